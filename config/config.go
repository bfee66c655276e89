package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of simulation performance.
var (
	TickInterval     = time.Duration(getEnvInt("TICK_INTERVAL_MS", 200)) * time.Millisecond
	LoopPoll         = time.Duration(getEnvInt("LOOP_POLL_MS", 5)) * time.Millisecond
	FoodCount        = getEnvInt("FOOD_COUNT", 3)
	SnakeLength      = getEnvInt("SNAKE_LENGTH", 2)
	SocketFrameRate  = rate.Limit(getEnvInt("SOCKET_FRAME_RPS", 20))
	SocketFrameBurst = getEnvInt("SOCKET_FRAME_BURST", 5)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

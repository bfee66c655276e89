package game

import "github.com/prometheus/client_golang/prometheus"

var (
	stepsApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snakez",
			Subsystem: "game",
			Name:      "steps_total",
			Help:      "Steps applied by the simulation loop.",
		},
	)
	snakeDeaths = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snakez",
			Subsystem: "game",
			Name:      "deaths_total",
			Help:      "Snake deaths by cause.",
		},
		[]string{"cause"},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snakez",
			Subsystem: "game",
			Name:      "food_eaten_total",
			Help:      "Food items consumed by snakes.",
		},
	)
)

func init() {
	prometheus.MustRegister(stepsApplied, snakeDeaths, foodEaten)
}

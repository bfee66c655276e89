package main

import (
	"math/rand"
	"time"

	"github.com/snakezio/snakez/cmd/snakez/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}

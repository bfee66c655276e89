package commands

import (
	termbox "github.com/nsf/termbox-go"

	"github.com/snakezio/snakez/rules"
)

// pollInput translates termbox key events into direction intents.
// Player 0 steers with the arrow keys, player 1 with WASD. Esc or
// Ctrl-C requests a stop.
func pollInput(intents []chan rules.Direction, requestStop func()) {
	for {
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}
		if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
			requestStop()
			return
		}
		player, dir, ok := keyDirection(ev)
		if !ok || player >= len(intents) {
			continue
		}
		select {
		case intents[player] <- dir:
		default:
			// Queue full; the tick will catch the next press.
		}
	}
}

func keyDirection(ev termbox.Event) (int, rules.Direction, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return 0, rules.MinusY, true
	case termbox.KeyArrowDown:
		return 0, rules.PlusY, true
	case termbox.KeyArrowLeft:
		return 0, rules.MinusX, true
	case termbox.KeyArrowRight:
		return 0, rules.PlusX, true
	}
	switch ev.Ch {
	case 'w', 'W':
		return 1, rules.MinusY, true
	case 's', 'S':
		return 1, rules.PlusY, true
	case 'a', 'A':
		return 1, rules.MinusX, true
	case 'd', 'D':
		return 1, rules.PlusX, true
	}
	return 0, 0, false
}

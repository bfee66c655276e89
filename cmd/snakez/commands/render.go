package commands

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"github.com/snakezio/snakez/game"
	"github.com/snakezio/snakez/rules"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	foodRune     = '🍕'
)

var playerColors = []termbox.Attribute{
	termbox.ColorGreen,
	termbox.ColorBlue,
	termbox.ColorMagenta,
	termbox.ColorCyan,
}

func render(up game.Update) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	const (
		left = 2
		top  = 2
	)

	renderTitle(left, top, up.Turn)
	renderBoard(up.Grid, top, left)
	renderGrid(up.Grid, top, left)
	renderSummaries(up.Grid.Width+left+5, top+1, up.Summaries)

	return termbox.Flush()
}

func renderGameOver(over game.GameOver) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}
	tbprint(2, 2, defaultColor, defaultColor, "Game over!")
	for i, s := range over.Summaries {
		tbprint(2, 4+i, defaultColor, defaultColor, fmt.Sprintf("Player %d: %d", i, s.Score))
	}
	tbprint(2, 5+len(over.Summaries), defaultColor, defaultColor, "press ESC to quit")
	return termbox.Flush()
}

func renderGrid(grid *rules.Grid, top, left int) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell := grid.At(x, y)
			switch cell.Kind {
			case rules.CellSnake:
				color := playerColors[cell.Player%len(playerColors)]
				if cell.Part == rules.PartHead {
					color = termbox.ColorRed
				}
				termbox.SetCell(left+x, top+y+1, ' ', color, color)
			case rules.CellFood:
				termbox.SetCell(left+x, top+y+1, foodRune, defaultColor, bgColor)
			}
		}
	}
}

func renderSummaries(left, top int, summaries []game.PlayerSummary) {
	for i, s := range summaries {
		text := fmt.Sprintf("Player %d: %d", i, s.Score)
		if !s.Alive {
			text = fmt.Sprintf("%s - dead", text)
		}
		tbprint(left, top+i*2, defaultColor, defaultColor, text)
	}
}

func renderBoard(grid *rules.Grid, top, left int) {
	bottom := top + grid.Height + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+grid.Width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+grid.Width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+grid.Width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, grid.Width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, grid.Width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, turn int64) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("snakez - Turn %d", turn))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

// Package tui draws game sessions on a terminal and feeds key presses back
// into a session's input flags.
package tui

import (
	"fmt"
	"sync"

	"github.com/beka-birhanu/starmaze/game"
	"github.com/beka-birhanu/starmaze/maze"
	"github.com/beka-birhanu/starmaze/service/i"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
)

// Each maze cell takes cellWidth columns and cellHeight lines, walls included.
const (
	cellWidth  = 4
	cellHeight = 2
)

var (
	wallStyle       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	starStyle       = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	gateClosedStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	gateOpenStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	statusStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	wonStyle        = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
)

// Presenter renders snapshots onto a tcell screen.
type Presenter struct {
	screen tcell.Screen
	logger *log.Entry

	mu      sync.Mutex
	message string
}

var _ i.Presenter = &Presenter{}

// NewPresenter returns a presenter drawing on an initialized screen.
func NewPresenter(screen tcell.Screen, logger *log.Entry) *Presenter {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Presenter{screen: screen, logger: logger}
}

// Render implements i.Presenter.
func (p *Presenter) Render(_ uuid.UUID, s game.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.screen.Clear()
	drawMaze(p.screen, s)
	drawEntities(p.screen, s)
	drawStatus(p.screen, s, p.message)
	p.screen.Show()
}

// Message implements i.Presenter.
func (p *Presenter) Message(_ uuid.UUID, msg string) {
	p.mu.Lock()
	p.message = msg
	p.mu.Unlock()
}

// Won implements i.Presenter.
func (p *Presenter) Won(id uuid.UUID, s game.Snapshot) {
	p.logger.WithField("session", id).Debug("presenting win")
	p.Render(id, s)
}

func drawMaze(screen tcell.Screen, s game.Snapshot) {
	for r, row := range s.Cells {
		for c, cell := range row {
			x0, y0 := c*cellWidth, r*cellHeight

			screen.SetContent(x0, y0, '+', nil, wallStyle)
			if cell.TopWall {
				hline(screen, x0+1, y0)
			}
			if cell.LeftWall {
				screen.SetContent(x0, y0+1, '|', nil, wallStyle)
			}

			// the right and bottom edges of the grid close the drawing
			if c == s.Cols-1 {
				screen.SetContent(x0+cellWidth, y0, '+', nil, wallStyle)
				if cell.RightWall {
					screen.SetContent(x0+cellWidth, y0+1, '|', nil, wallStyle)
				}
			}
			if r == s.Rows-1 {
				screen.SetContent(x0, y0+cellHeight, '+', nil, wallStyle)
				if cell.BottomWall {
					hline(screen, x0+1, y0+cellHeight)
				}
			}
		}
	}
	screen.SetContent(s.Cols*cellWidth, s.Rows*cellHeight, '+', nil, wallStyle)
}

func hline(screen tcell.Screen, x, y int) {
	for dx := 0; dx < cellWidth-1; dx++ {
		screen.SetContent(x+dx, y, '-', nil, wallStyle)
	}
}

func drawEntities(screen tcell.Screen, s game.Snapshot) {
	for _, st := range s.Stars {
		if st.Collected {
			continue
		}
		x, y := cellCenter(st.Pos)
		screen.SetContent(x, y, '*', nil, starStyle)
	}

	gx, gy := cellCenter(s.Gate.Pos)
	if s.Gate.IsOpen {
		screen.SetContent(gx, gy, 'O', nil, gateOpenStyle)
	} else {
		screen.SetContent(gx, gy, '#', nil, gateClosedStyle)
	}

	px, py := playerPosition(s.Player, s.CellSize)
	screen.SetContent(px, py, '@', nil, tcell.StyleDefault.Foreground(hueColor(s.Player.Hue)).Bold(true))
}

func drawStatus(screen tcell.Screen, s game.Snapshot, message string) {
	y := s.Rows*cellHeight + 1
	status := fmt.Sprintf("Stars: %d/%d", s.Collected(), len(s.Stars))
	x := drawText(screen, 0, y, status, statusStyle)

	if message == "" {
		return
	}
	style := statusStyle
	if s.State == game.StateWon {
		style = wonStyle
	}
	drawText(screen, x+2, y, message, style)
}

// drawText writes text from (x, y) and returns the column after it.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// cellCenter is the screen position of the middle of a maze cell.
func cellCenter(pos maze.CellPosition) (int, int) {
	return pos.Col*cellWidth + cellWidth/2, pos.Row*cellHeight + cellHeight/2
}

// playerPosition maps the player's continuous position onto the interior
// columns of its cell. A cell has a single interior line, so the row only
// follows the containing cell.
func playerPosition(p game.Player, cellSize float64) (int, int) {
	pos := p.Cell(cellSize)
	localX := p.X - float64(pos.Col)*cellSize

	offset := 1 + int(localX/cellSize*float64(cellWidth-1))
	offset = max(1, min(offset, cellWidth-1))

	return pos.Col*cellWidth + offset, pos.Row*cellHeight + 1
}

// hueColor turns a hue in degrees into a fully saturated terminal colour.
func hueColor(hue int) tcell.Color {
	r, g, b := colorful.Hsv(float64(hue), 1, 1).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

package maze

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and a transient visited flag
// that is only meaningful while the maze is being carved.
type Cell struct {
	TopWall    bool // TopWall indicates whether there is a wall on the top side of the cell.
	RightWall  bool // RightWall indicates whether there is a wall on the right side of the cell.
	BottomWall bool // BottomWall indicates whether there is a wall on the bottom side of the cell.
	LeftWall   bool // LeftWall indicates whether there is a wall on the left side of the cell.
	Visited    bool // Visited is set by the generator once the cell joins the carved tree.
}

// newCell returns a cell with all four walls intact.
func newCell() *Cell {
	return &Cell{
		TopWall:    true,
		RightWall:  true,
		BottomWall: true,
		LeftWall:   true,
	}
}

// HasWall reports whether the cell's wall on the given side is intact.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case Up:
		return c.TopWall
	case Right:
		return c.RightWall
	case Down:
		return c.BottomWall
	case Left:
		return c.LeftWall
	default:
		return true
	}
}

func (c *Cell) clearWall(d Direction) {
	switch d {
	case Up:
		c.TopWall = false
	case Right:
		c.RightWall = false
	case Down:
		c.BottomWall = false
	case Left:
		c.LeftWall = false
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one cell away in direction d.
func (cp CellPosition) Step(d Direction) CellPosition {
	delta := deltas[d]
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Direction names one of the four sides of a cell.
type Direction int

// Directions in the order neighbours are inspected while carving.
const (
	Up Direction = iota
	Right
	Down
	Left
)

var (
	// Directions lists every direction in carving order.
	Directions = [...]Direction{Up, Right, Down, Left}

	deltas = map[Direction]CellPosition{
		Up:    {Row: -1, Col: 0},
		Right: {Row: 0, Col: 1},
		Down:  {Row: 1, Col: 0},
		Left:  {Row: 0, Col: -1},
	}
)

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

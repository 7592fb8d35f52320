package entity

// Cell is one of the 9 board positions. The first letter of the wire name is
// the row (Lower, Middle, Upper), the second the column (Left, Middle, Right).
type Cell int

const (
	CellLL Cell = iota
	CellLM
	CellLR
	CellML
	CellMM
	CellMR
	CellUL
	CellUM
	CellUR

	// CellNone is the distinguished invalid value every check rejects.
	CellNone Cell = -1
)

const BoardSize = 9

var cellNames = map[Cell]string{
	CellLL: "LL",
	CellLM: "LM",
	CellLR: "LR",
	CellML: "ML",
	CellMM: "MM",
	CellMR: "MR",
	CellUL: "UL",
	CellUM: "UM",
	CellUR: "UR",
}

var cellValues = map[string]Cell{
	"LL": CellLL,
	"LM": CellLM,
	"LR": CellLR,
	"ML": CellML,
	"MM": CellMM,
	"MR": CellMR,
	"UL": CellUL,
	"UM": CellUM,
	"UR": CellUR,
}

// ParseCell - maps a wire name to a Cell; anything unrecognized becomes CellNone.
func ParseCell(value string) Cell {
	cell, ok := cellValues[value]
	if !ok {
		return CellNone
	}

	return cell
}

func (that Cell) String() string {
	name, ok := cellNames[that]
	if !ok {
		return ""
	}

	return name
}

func (that Cell) IsValid() bool {
	_, ok := cellNames[that]
	return ok
}

// Row returns the row index: 0 lower, 1 middle, 2 upper.
func (that Cell) Row() int {
	return int(that) / 3
}

// Column returns the column index: 0 left, 1 middle, 2 right.
func (that Cell) Column() int {
	return int(that) % 3
}

// OnMainDiagonal reports whether the cell lies on the lower-left to
// upper-right diagonal. The anti-diagonal is not a winning line.
func (that Cell) OnMainDiagonal() bool {
	return that.IsValid() && that.Row() == that.Column()
}

// RowCells returns the three cells of this cell's row.
func (that Cell) RowCells() [3]Cell {
	first := Cell(that.Row() * 3)
	return [3]Cell{first, first + 1, first + 2}
}

// ColumnCells returns the three cells of this cell's column.
func (that Cell) ColumnCells() [3]Cell {
	first := Cell(that.Column())
	return [3]Cell{first, first + 3, first + 6}
}

// MainDiagonalCells returns the lower-left, middle and upper-right cells.
func MainDiagonalCells() [3]Cell {
	return [3]Cell{CellLL, CellMM, CellUR}
}

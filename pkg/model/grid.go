package model

// GridRow is one period row of the weekly timetable: a shared time range and
// one cell per day. A cell holds the placements occupying that (day, period)
// pair in enrollment order; two or more placements in a cell is a conflict.
type GridRow struct {
	Label string        `json:"label"`
	Time  TimeRange     `json:"time"`
	Cells [][]Placement `json:"cells"`
}

// Grid is the derived weekly timetable for one enrolled-course snapshot.
// Dimensions come from the institution slot configuration.
type Grid struct {
	DayNames []string   `json:"dayNames"`
	Rows     []*GridRow `json:"rows"`
}

// NewGrid creates an empty grid with the given day names and row labels.
func NewGrid(dayNames []string, rowLabels []string, rowTimes []TimeRange) *Grid {
	g := &Grid{DayNames: dayNames, Rows: make([]*GridRow, len(rowLabels))}
	for i := range g.Rows {
		g.Rows[i] = &GridRow{
			Label: rowLabels[i],
			Time:  rowTimes[i],
			Cells: make([][]Placement, len(dayNames)),
		}
	}
	return g
}

// Cell returns the placements at (day, row). Out-of-range indices yield nil.
func (g *Grid) Cell(day int, row int) []Placement {
	if row < 0 || row >= len(g.Rows) {
		return nil
	}
	r := g.Rows[row]
	if day < 0 || day >= len(r.Cells) {
		return nil
	}
	return r.Cells[day]
}

// Place appends a placement to its cell. Placements with unknown slot codes
// carry no grid position and are ignored here.
func (g *Grid) Place(p Placement) {
	if !p.Scheduled() || p.Row >= len(g.Rows) {
		return
	}
	r := g.Rows[p.Row]
	if p.Day >= len(r.Cells) {
		return
	}
	r.Cells[p.Day] = append(r.Cells[p.Day], p)
}

// Conflict reports one grid cell occupied by more than one placement.
type Conflict struct {
	Day        int         `json:"day"`
	DayName    string      `json:"dayName"`
	Row        int         `json:"row"`
	SlotCode   string      `json:"slotCode"`
	Time       TimeRange   `json:"time"`
	Placements []Placement `json:"placements"`
}

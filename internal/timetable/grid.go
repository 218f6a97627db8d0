package timetable

import (
	"github.com/coursemash/coursemash/pkg/model"
)

// BuildGrid places every enrolled course onto the weekly grid. Courses are
// processed in the order given, which reflects enrollment recency, so cell
// contents and conflict reports stay stable across recomputations. The grid
// is rebuilt from scratch on every call; with a bounded enrolled list there
// is nothing worth caching.
func BuildGrid(courses []model.Course, cat *SlotCatalog) *model.Grid {
	labels := make([]string, cat.RowCount())
	times := make([]model.TimeRange, cat.RowCount())
	for r := 0; r < cat.RowCount(); r++ {
		labels[r] = cat.RowLabel(r)
		times[r] = cat.RowTime(r)
	}

	grid := model.NewGrid(cat.DayNames(), labels, times)
	for _, c := range courses {
		for _, p := range Resolve(c, cat) {
			grid.Place(p)
		}
	}
	return grid
}

// Conflicts lists every grid cell with two or more occupants, scanning rows
// in time order and days left to right. Placement order within a conflict is
// enrollment order.
func Conflicts(grid *model.Grid, cat *SlotCatalog) []model.Conflict {
	var out []model.Conflict
	for row, r := range grid.Rows {
		for day := range r.Cells {
			cell := r.Cells[day]
			if len(cell) < 2 {
				continue
			}
			out = append(out, model.Conflict{
				Day:        day,
				DayName:    grid.DayNames[day],
				Row:        row,
				SlotCode:   cat.CodeAt(day, row),
				Time:       r.Time,
				Placements: cell,
			})
		}
	}
	return out
}

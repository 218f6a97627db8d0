package timetable

import (
	"strings"

	"github.com/coursemash/coursemash/internal/config"
	"github.com/coursemash/coursemash/pkg/model"
)

type slotPos struct {
	day int
	row int
}

// SlotCatalog maps institution slot codes to their day, period row, and time
// range. It is built once from configuration and never mutated afterwards.
type SlotCatalog struct {
	dayNames  []string
	rowLabels []string
	rowTimes  []model.TimeRange
	positions map[string]slotPos
}

// NewSlotCatalog builds a catalog from the institution timetable config.
// Row time labels that fail to parse leave the row with the unknown sentinel;
// lookup still works by position.
func NewSlotCatalog(tt config.TimetableConfig) *SlotCatalog {
	c := &SlotCatalog{
		dayNames:  tt.Days,
		rowLabels: make([]string, len(tt.Rows)),
		rowTimes:  make([]model.TimeRange, len(tt.Rows)),
		positions: make(map[string]slotPos),
	}
	for r, row := range tt.Rows {
		c.rowLabels[r] = row.Time
		if tr, ok := ParseTimeRange(row.Time); ok {
			c.rowTimes[r] = tr
		}
		for d, code := range row.Codes {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code == "" {
				continue
			}
			if _, seen := c.positions[code]; !seen {
				c.positions[code] = slotPos{day: d, row: r}
			}
		}
	}
	return c
}

// TimeFor returns the time range for a slot code. Unrecognized codes (custom
// courses may carry free-text tokens) return ok=false, never an error.
func (c *SlotCatalog) TimeFor(code string) (model.TimeRange, bool) {
	pos, ok := c.positions[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return model.TimeRange{}, false
	}
	return c.rowTimes[pos.row], true
}

// PositionFor returns the (day, row) grid position of a slot code, or
// (-1, -1) if the code is not part of the base timetable.
func (c *SlotCatalog) PositionFor(code string) (day int, row int, ok bool) {
	pos, found := c.positions[strings.ToUpper(strings.TrimSpace(code))]
	if !found {
		return -1, -1, false
	}
	return pos.day, pos.row, true
}

// CodesForDay returns the slot codes appearing on the given day, in period
// order.
func (c *SlotCatalog) CodesForDay(day int) []string {
	if day < 0 || day >= len(c.dayNames) {
		return nil
	}
	codes := make([]string, 0, len(c.rowTimes))
	for r := 0; r < len(c.rowTimes); r++ {
		for code, pos := range c.positions {
			if pos.day == day && pos.row == r {
				codes = append(codes, code)
			}
		}
	}
	return codes
}

// DayNames returns the ordered day names of the base timetable.
func (c *SlotCatalog) DayNames() []string { return c.dayNames }

// RowCount returns the number of period rows.
func (c *SlotCatalog) RowCount() int { return len(c.rowTimes) }

// RowLabel returns the configured time label for a period row.
func (c *SlotCatalog) RowLabel(row int) string {
	if row < 0 || row >= len(c.rowLabels) {
		return ""
	}
	return c.rowLabels[row]
}

// RowTime returns the parsed time range for a period row.
func (c *SlotCatalog) RowTime(row int) model.TimeRange {
	if row < 0 || row >= len(c.rowTimes) {
		return model.TimeRange{}
	}
	return c.rowTimes[row]
}

// CodeAt returns the slot code at a (day, row) grid position.
func (c *SlotCatalog) CodeAt(day int, row int) string {
	for code, pos := range c.positions {
		if pos.day == day && pos.row == row {
			return code
		}
	}
	return ""
}

package csvio

import (
	"fmt"
	"os"
	"strings"

	"github.com/coursemash/coursemash/internal/timetable"
	"github.com/coursemash/coursemash/pkg/model"
)

// PrintTimetable prints the weekly grid row by row. Conflicting cells are
// marked with a bang and every occupant listed.
func PrintTimetable(grid *model.Grid) {
	for _, row := range grid.Rows {
		fmt.Printf("\n%s %s %s\n", strings.Repeat("-", 8), row.Label, strings.Repeat("-", 8))
		for day, cell := range row.Cells {
			if len(cell) == 0 {
				continue
			}
			marker := " "
			if len(cell) > 1 {
				marker = "!"
			}
			for _, p := range cell {
				fmt.Printf("%s %-10s %-10s %-9s %-12s %s\n",
					marker, grid.DayNames[day], p.CourseCode, p.Session, p.Location, p.Instructor)
			}
		}
	}
	fmt.Println()
}

// PrintConflicts prints the conflict report, one block per conflicting cell.
func PrintConflicts(conflicts []model.Conflict) {
	if len(conflicts) == 0 {
		fmt.Println("No slot conflicts.")
		return
	}
	fmt.Printf("Found %d conflicting slot(s):\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Printf("  %s %s (%s):\n", c.DayName, c.SlotCode, timetable.FormatTimeRange(c.Time))
		for _, p := range c.Placements {
			fmt.Printf("    %s %s (%s)\n", p.CourseCode, p.CourseName, p.Session)
		}
	}
}

// WriteCalendar writes exported calendar text to the given path.
func WriteCalendar(path string, ics string) error {
	return os.WriteFile(path, []byte(ics), 0o644)
}

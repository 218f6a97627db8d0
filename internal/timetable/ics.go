package timetable

import (
	"fmt"
	"strings"
	"time"

	"github.com/coursemash/coursemash/pkg/model"
)

// Policy selects how conflicting cells are exported.
type Policy int

const (
	// PolicyExportAll emits every placement as its own event and lets the
	// calendar application show the overlap.
	PolicyExportAll Policy = iota
	// PolicyFirstWins emits only the first placement by enrollment order and
	// lists the suppressed courses in the event description.
	PolicyFirstWins
)

// ExportOptions carry the deployment's calendar settings.
type ExportOptions struct {
	Timezone  string // IANA zone id used in TZID properties
	WeekStart string // YYYYMMDD date of the Monday anchoring DTSTART
	Until     string // YYYYMMDD last date covered by the weekly recurrence
	ProdID    string
	Policy    Policy
}

var sessionTitles = map[model.SessionType]string{
	model.SessionLecture:  "Lecture",
	model.SessionLab:      "Lab",
	model.SessionTutorial: "Tutorial",
}

var bydayCodes = map[string]string{
	"Monday":    "MO",
	"Tuesday":   "TU",
	"Wednesday": "WE",
	"Thursday":  "TH",
	"Friday":    "FR",
	"Saturday":  "SA",
	"Sunday":    "SU",
}

// ExportICS serializes the occupied grid cells as weekly recurring events in
// iCalendar text, one VEVENT per placement (subject to the conflict policy),
// lines joined with CRLF.
func ExportICS(grid *model.Grid, opts ExportOptions) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + opts.ProdID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	weekStart, err := time.Parse("20060102", opts.WeekStart)
	if err != nil {
		weekStart = time.Time{}
	}

	for _, row := range grid.Rows {
		if row.Time.IsZero() {
			continue
		}
		for day := range row.Cells {
			cell := row.Cells[day]
			if len(cell) == 0 {
				continue
			}
			exported := cell
			var suppressed []model.Placement
			if opts.Policy == PolicyFirstWins && len(cell) > 1 {
				exported = cell[:1]
				suppressed = cell[1:]
			}
			// First occurrence lands on the correct weekday of the anchor week.
			date := weekStart.AddDate(0, 0, day).Format("20060102")
			for _, p := range exported {
				lines = append(lines, eventLines(p, row.Time, grid.DayNames[day], date, suppressed, opts)...)
			}
		}
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

func eventLines(p model.Placement, tr model.TimeRange, dayName string, date string, suppressed []model.Placement, opts ExportOptions) []string {
	description := "Instructor: " + p.Instructor
	if len(suppressed) > 0 {
		var also []string
		for _, s := range suppressed {
			also = append(also, fmt.Sprintf("%s (%s)", s.CourseCode, sessionTitles[s.Session]))
		}
		description += "\\nAlso scheduled in this slot: " + strings.Join(also, ", ")
	}

	return []string{
		"BEGIN:VEVENT",
		fmt.Sprintf("SUMMARY:%s - %s (%s)", p.CourseCode, p.CourseName, sessionTitles[p.Session]),
		"DESCRIPTION:" + description,
		"LOCATION:" + p.Location,
		fmt.Sprintf("RRULE:FREQ=WEEKLY;BYDAY=%s;UNTIL=%sT235959Z", bydayCodes[dayName], opts.Until),
		fmt.Sprintf("DTSTART;TZID=%s:%sT%s", opts.Timezone, date, icsClock(tr.Start)),
		fmt.Sprintf("DTEND;TZID=%s:%sT%s", opts.Timezone, date, icsClock(tr.End)),
		"END:VEVENT",
	}
}

func icsClock(minutes int) string {
	return fmt.Sprintf("%02d%02d00", minutes/60, minutes%60)
}

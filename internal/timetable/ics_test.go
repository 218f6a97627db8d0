package timetable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursemash/coursemash/pkg/model"
)

func testExportOptions() ExportOptions {
	return ExportOptions{
		Timezone:  "Asia/Kolkata",
		WeekStart: "20260105", // a Monday
		Until:     "20260530",
		ProdID:    "-//CourseMash//Academic Schedule//EN",
		Policy:    PolicyExportAll,
	}
}

func TestExportICSStructure(t *testing.T) {
	cat := testSlots()
	c := lectureCourse("CS101", "A1", "(LHC 101)")
	c.Name = "Introduction to Programming"
	c.Instructors = []string{"R. Iyer"}

	ics := ExportICS(BuildGrid([]model.Course{c}, cat), testExportOptions())
	lines := strings.Split(ics, "\r\n")

	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, lines, "VERSION:2.0")
	assert.Contains(t, lines, "PRODID:-//CourseMash//Academic Schedule//EN")
	assert.Contains(t, lines, "CALSCALE:GREGORIAN")
	assert.Contains(t, lines, "METHOD:PUBLISH")

	assert.Contains(t, lines, "SUMMARY:CS101 - Introduction to Programming (Lecture)")
	assert.Contains(t, lines, "DESCRIPTION:Instructor: R. Iyer")
	assert.Contains(t, lines, "LOCATION:LHC 101")
	assert.Contains(t, lines, "RRULE:FREQ=WEEKLY;BYDAY=MO;UNTIL=20260530T235959Z")
	assert.Contains(t, lines, "DTSTART;TZID=Asia/Kolkata:20260105T083000")
	assert.Contains(t, lines, "DTEND;TZID=Asia/Kolkata:20260105T095000")
}

func TestExportICSWeekdayDates(t *testing.T) {
	cat := testSlots()
	// A2 sits on Wednesday: two days after the Monday anchor.
	c := lectureCourse("MA102", "A2", "(MSB 12)")

	ics := ExportICS(BuildGrid([]model.Course{c}, cat), testExportOptions())

	assert.Contains(t, ics, "RRULE:FREQ=WEEKLY;BYDAY=WE;UNTIL=20260530T235959Z")
	assert.Contains(t, ics, "DTSTART;TZID=Asia/Kolkata:20260107T083000")
}

func TestExportICSOneEventPerPlacement(t *testing.T) {
	cat := testSlots()
	a := lectureCourse("CS101", "A1", "")
	b := lectureCourse("CS105", "A1", "")

	ics := ExportICS(BuildGrid([]model.Course{a, b}, cat), testExportOptions())
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"), "export-all keeps overlapping events")
	assert.Contains(t, ics, "SUMMARY:CS101 - CS101 name (Lecture)")
	assert.Contains(t, ics, "SUMMARY:CS105 - CS105 name (Lecture)")
}

func TestExportICSFirstWinsPolicy(t *testing.T) {
	cat := testSlots()
	a := lectureCourse("CS101", "A1", "")
	b := lectureCourse("CS105", "A1", "")

	opts := testExportOptions()
	opts.Policy = PolicyFirstWins
	ics := ExportICS(BuildGrid([]model.Course{a, b}, cat), opts)

	assert.Equal(t, 1, strings.Count(ics, "BEGIN:VEVENT"))
	assert.Contains(t, ics, "SUMMARY:CS101 - CS101 name (Lecture)", "first by enrollment order wins")
	assert.Contains(t, ics, "Also scheduled in this slot: CS105 (Lecture)")
}

func TestExportICSEmptyGrid(t *testing.T) {
	cat := testSlots()
	ics := ExportICS(BuildGrid(nil, cat), testExportOptions())

	assert.NotContains(t, ics, "BEGIN:VEVENT")
	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(ics, "\r\nEND:VCALENDAR"))
}

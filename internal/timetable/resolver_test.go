package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursemash/coursemash/pkg/model"
)

func lectureCourse(code string, slots string, location string) model.Course {
	return model.Course{
		Code: code,
		Name: code + " name",
		Schedule: map[model.SessionType]model.SessionInfo{
			model.SessionLecture: {slots, location},
		},
	}
}

func TestResolveBasic(t *testing.T) {
	cat := testSlots()
	c := lectureCourse("CS101", "A1, C1", "(LHC 101)")
	c.Instructors = []string{"R. Iyer"}

	placements := Resolve(c, cat)
	assert.Len(t, placements, 2)

	first := placements[0]
	assert.Equal(t, "CS101", first.CourseCode)
	assert.Equal(t, model.SessionLecture, first.Session)
	assert.Equal(t, "A1", first.SlotCode)
	assert.Equal(t, 0, first.Day)
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, "LHC 101", first.Location, "parentheses stripped for display")
	assert.Equal(t, "R. Iyer", first.Instructor)
	assert.Equal(t, model.TimeRange{Start: 510, End: 590}, first.Time)

	assert.Equal(t, "C1", placements[1].SlotCode)
	assert.Equal(t, 1, placements[1].Row)
}

func TestResolveFlexibleCourseIgnoresStrayContent(t *testing.T) {
	cat := testSlots()
	c := lectureCourse("PRJ401", "A1,B1,C1", "(LHC 101)")
	c.HasNoSlot = true

	assert.Empty(t, Resolve(c, cat))
}

func TestResolveUnknownSlotCodeKept(t *testing.T) {
	cat := testSlots()
	c := lectureCourse("CUST01", "XX1", "Maker Space")

	placements := Resolve(c, cat)
	assert.Len(t, placements, 1, "unknown codes must not be silently dropped")
	p := placements[0]
	assert.Equal(t, "XX1", p.SlotCode)
	assert.False(t, p.Scheduled())
	assert.True(t, p.Time.IsZero())
}

func TestResolveTokenNormalization(t *testing.T) {
	cat := testSlots()
	c := lectureCourse("MA102", " a2 , , e1,", "")

	placements := Resolve(c, cat)
	assert.Len(t, placements, 2, "empty tokens discarded")
	assert.Equal(t, "A2", placements[0].SlotCode)
	assert.Equal(t, "E1", placements[1].SlotCode)
	assert.Equal(t, "TBA", placements[0].Location)
}

func TestResolveAllSessionTypes(t *testing.T) {
	cat := testSlots()
	c := model.Course{
		Code: "CS201",
		Schedule: map[model.SessionType]model.SessionInfo{
			model.SessionLecture:  {"B1", "(LHC 204)"},
			model.SessionLab:      {"J1", "(Lab Block 2)"},
			model.SessionTutorial: {"G1", "(LHC 204)", "A. Das"},
		},
	}
	c.Instructors = []string{"M. Gupta"}

	placements := Resolve(c, cat)
	assert.Len(t, placements, 3)
	bySession := map[model.SessionType]model.Placement{}
	for _, p := range placements {
		bySession[p.Session] = p
	}
	assert.Equal(t, "M. Gupta", bySession[model.SessionLecture].Instructor)
	assert.Equal(t, "M. Gupta", bySession[model.SessionLab].Instructor)
	assert.Equal(t, "A. Das", bySession[model.SessionTutorial].Instructor, "per-session override wins")
}

func TestResolveInstructorFallsBackToStaff(t *testing.T) {
	cat := testSlots()
	c := lectureCourse("HS301", "F1", "(HSB 22)")

	placements := Resolve(c, cat)
	assert.Len(t, placements, 1)
	assert.Equal(t, "Staff", placements[0].Instructor)
}

func TestResolveMissingScheduleIsEmpty(t *testing.T) {
	cat := testSlots()
	c := model.Course{Code: "NOPE"}

	assert.Empty(t, Resolve(c, cat))
}

func TestFlexibleCourses(t *testing.T) {
	flexible := model.Course{Code: "PRJ401", HasNoSlot: true}
	fixed := lectureCourse("CS101", "A1", "")

	out := FlexibleCourses([]model.Course{fixed, flexible})
	assert.Len(t, out, 1)
	assert.Equal(t, "PRJ401", out[0].Code)
}

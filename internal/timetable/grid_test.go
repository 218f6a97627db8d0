package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursemash/coursemash/pkg/model"
)

func TestBuildGridConflictScenario(t *testing.T) {
	cat := testSlots()
	a := lectureCourse("CS101", "A1", "(LHC 101)")
	b := lectureCourse("CS105", "A1, B1", "(LHC 102)")

	grid := BuildGrid([]model.Course{a, b}, cat)

	monday := grid.Cell(0, 0)
	assert.Len(t, monday, 2, "Monday period 1 is a conflict")
	assert.Equal(t, "CS101", monday[0].CourseCode, "enrollment order preserved")
	assert.Equal(t, "CS105", monday[1].CourseCode)

	tuesday := grid.Cell(1, 0)
	assert.Len(t, tuesday, 1, "Tuesday period 1 has a single occupant")
	assert.Equal(t, "CS105", tuesday[0].CourseCode)

	conflicts := Conflicts(grid, cat)
	assert.Len(t, conflicts, 1)
	c := conflicts[0]
	assert.Equal(t, "Monday", c.DayName)
	assert.Equal(t, "A1", c.SlotCode)
	codes := []string{c.Placements[0].CourseCode, c.Placements[1].CourseCode}
	assert.Equal(t, []string{"CS101", "CS105"}, codes)
}

func TestBuildGridThreeStateCells(t *testing.T) {
	cat := testSlots()
	a := lectureCourse("CS101", "A1", "")
	b := lectureCourse("CS105", "A1", "")

	grid := BuildGrid([]model.Course{a, b}, cat)

	assert.Empty(t, grid.Cell(2, 2), "empty cell")
	assert.Len(t, grid.Cell(0, 0), 2, "conflict cell")

	grid2 := BuildGrid([]model.Course{a}, cat)
	assert.Len(t, grid2.Cell(0, 0), 1, "single-occupant cell")
}

func TestBuildGridDimensionsFromConfig(t *testing.T) {
	cat := testSlots()
	grid := BuildGrid(nil, cat)

	assert.Len(t, grid.Rows, 6)
	for _, row := range grid.Rows {
		assert.Len(t, row.Cells, 5)
	}
	assert.Equal(t, "08:30 AM - 09:50 AM", grid.Rows[0].Label)
}

func TestBuildGridSkipsFlexibleAndUnknown(t *testing.T) {
	cat := testSlots()
	flexible := model.Course{Code: "PRJ401", HasNoSlot: true}
	unknown := lectureCourse("CUST01", "QQ7", "")

	grid := BuildGrid([]model.Course{flexible, unknown}, cat)
	for _, row := range grid.Rows {
		for _, cell := range row.Cells {
			assert.Empty(t, cell)
		}
	}
	assert.Empty(t, Conflicts(grid, cat))
}

func TestConflictsStableAcrossRebuilds(t *testing.T) {
	cat := testSlots()
	courses := []model.Course{
		lectureCourse("CS101", "A1,C1", ""),
		lectureCourse("CS105", "A1", ""),
		lectureCourse("MA102", "C1", ""),
	}

	first := Conflicts(BuildGrid(courses, cat), cat)
	second := Conflicts(BuildGrid(courses, cat), cat)
	assert.Equal(t, first, second, "recomputation is deterministic")
	assert.Len(t, first, 2)
	// Rows scan in time order: A1 (period 1) before C1 (period 2).
	assert.Equal(t, "A1", first[0].SlotCode)
	assert.Equal(t, "C1", first[1].SlotCode)
}

package timetable

import (
	"strings"

	"github.com/coursemash/coursemash/pkg/model"
)

var parenStripper = strings.NewReplacer("(", "", ")", "")

// Resolve expands a course's raw schedule strings into placements against the
// slot catalog. Flexible courses (HasNoSlot) resolve to nothing regardless of
// stray schedule content. Slot codes the catalog does not recognize still
// produce a placement, with the unknown time sentinel and no grid position;
// a custom course may use institution-unrecognized codes deliberately.
func Resolve(c model.Course, cat *SlotCatalog) []model.Placement {
	if c.HasNoSlot {
		return nil
	}

	var out []model.Placement
	for _, session := range model.SessionTypes {
		info := c.Session(session)

		location := strings.TrimSpace(parenStripper.Replace(info.RawLocation()))
		if location == "" {
			location = "TBA"
		}

		// First non-empty wins: per-session override, course instructors, Staff.
		instructor := strings.TrimSpace(info.RawInstructor())
		if instructor == "" {
			instructor = c.InstructorDisplay()
		}

		for _, token := range strings.Split(info.RawSlots(), ",") {
			code := strings.ToUpper(strings.TrimSpace(token))
			if code == "" {
				continue
			}
			day, row, _ := cat.PositionFor(code)
			tr, _ := cat.TimeFor(code)
			out = append(out, model.Placement{
				CourseCode: c.Code,
				CourseName: c.Name,
				Session:    session,
				SlotCode:   code,
				Day:        day,
				Row:        row,
				Location:   location,
				Instructor: instructor,
				Time:       tr,
			})
		}
	}
	return out
}

// FlexibleCourses filters the courses that occupy no grid cell.
func FlexibleCourses(courses []model.Course) []model.Course {
	var out []model.Course
	for _, c := range courses {
		if c.HasNoSlot {
			out = append(out, c)
		}
	}
	return out
}

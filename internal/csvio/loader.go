// Package csvio loads catalog and enrollment data from disk. It owns no
// domain logic beyond the catalog deduplication invariant.
package csvio

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/coursemash/coursemash/pkg/model"
)

// CatalogRow is the CSV layout of one catalog course.
type CatalogRow struct {
	Code               string `csv:"Course_Code"`
	Name               string `csv:"Course_Name"`
	Credits            string `csv:"Credits"`
	Instructors        string `csv:"Instructors"`
	LectureSlots       string `csv:"Lecture_Slots"`
	LectureLocation    string `csv:"Lecture_Location"`
	LabSlots           string `csv:"Lab_Slots"`
	LabLocation        string `csv:"Lab_Location"`
	TutorialSlots      string `csv:"Tutorial_Slots"`
	TutorialLocation   string `csv:"Tutorial_Location"`
	TutorialInstructor string `csv:"Tutorial_Instructor"`
	NoSlot             bool   `csv:"No_Slot"`
}

// LoadCatalog reads and parses the given CSV file for catalog course data,
// deduplicates it, and returns the courses sorted by code.
func LoadCatalog(path string, delim rune) ([]model.Course, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := []*CatalogRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}

	courses := make([]model.Course, 0, len(rows))
	for _, r := range rows {
		courses = append(courses, rowToCourse(r))
	}
	return Dedup(courses), nil
}

func rowToCourse(r *CatalogRow) model.Course {
	var instructors []string
	for _, name := range strings.Split(r.Instructors, "|") {
		if name = strings.TrimSpace(name); name != "" {
			instructors = append(instructors, name)
		}
	}
	c := model.Course{
		Code:        strings.TrimSpace(r.Code),
		Name:        strings.TrimSpace(r.Name),
		Credits:     model.Credits(strings.TrimSpace(r.Credits)),
		Instructors: instructors,
		HasNoSlot:   r.NoSlot,
		Schedule: map[model.SessionType]model.SessionInfo{
			model.SessionLecture:  {r.LectureSlots, r.LectureLocation},
			model.SessionLab:      {r.LabSlots, r.LabLocation},
			model.SessionTutorial: {r.TutorialSlots, r.TutorialLocation, r.TutorialInstructor},
		},
	}
	if c.HasNoSlot {
		// Flexible courses must not smuggle slot tokens into the grid.
		for t, info := range c.Schedule {
			if len(info) > 0 {
				info[0] = ""
				c.Schedule[t] = info
			}
		}
	}
	return c
}

// LoadCatalogJSON reads the JSON catalog feed (an array of course records in
// the shape the web client consumes).
func LoadCatalogJSON(path string) ([]model.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, err
	}
	return Dedup(courses), nil
}

// Dedup drops duplicate course codes, matching case- and whitespace-
// insensitively; the first occurrence in catalog order wins. The result is
// sorted by code for stable listings.
func Dedup(courses []model.Course) []model.Course {
	seen := make(map[string]bool, len(courses))
	unique := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.Code == "" {
			continue
		}
		key := model.NormalizeCode(c.Code)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, c)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].Code < unique[j].Code })
	return unique
}

// LoadEnrollment reads an enrollment file: one course code per line, blank
// lines and #-comments skipped. Order is preserved, it reflects enrollment
// recency.
func LoadEnrollment(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var codes []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	return codes, nil
}

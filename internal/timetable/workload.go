package timetable

import (
	"strings"

	"github.com/coursemash/coursemash/pkg/model"
)

// LoadLabel classifies a weekly workload.
type LoadLabel string

const (
	LoadEmpty    LoadLabel = "Empty"
	LoadLight    LoadLabel = "Light"
	LoadBalanced LoadLabel = "Balanced"
	LoadHeavy    LoadLabel = "Heavy"
)

// Thresholds are the load-classification cutoffs in weekly hours. They are
// deployment configuration: the reference deployment uses the 12/18 band,
// and a simpler >24 cutoff is expressed as {24, 24}.
type Thresholds struct {
	LightBelow   float64
	BalancedUpTo float64
}

// WeeklyHours sums contact hours over all enrolled courses: every non-empty
// slot token across lecture, lab, and tutorial counts one session of the
// configured length. Flexible courses contribute nothing.
func WeeklyHours(courses []model.Course, sessionHours float64) float64 {
	sessions := 0
	for _, c := range courses {
		if c.HasNoSlot {
			continue
		}
		for _, session := range model.SessionTypes {
			for _, token := range strings.Split(c.Session(session).RawSlots(), ",") {
				if strings.TrimSpace(token) != "" {
					sessions++
				}
			}
		}
	}
	return float64(sessions) * sessionHours
}

// ClassifyLoad buckets a weekly hour count.
func ClassifyLoad(hours float64, t Thresholds) LoadLabel {
	switch {
	case hours == 0:
		return LoadEmpty
	case hours < t.LightBelow:
		return LoadLight
	case hours <= t.BalancedUpTo:
		return LoadBalanced
	default:
		return LoadHeavy
	}
}

// Stats is the dashboard aggregate for one enrolled-course snapshot.
type Stats struct {
	Courses     int       `json:"courses"`
	Flexible    int       `json:"flexible"`
	Credits     int       `json:"credits"`
	WeeklyHours float64   `json:"weeklyHours"`
	Load        LoadLabel `json:"load"`
}

// ComputeStats derives the full aggregate in one pass.
func ComputeStats(courses []model.Course, sessionHours float64, t Thresholds) Stats {
	s := Stats{Courses: len(courses)}
	for _, c := range courses {
		if c.HasNoSlot {
			s.Flexible++
		}
		s.Credits += c.Credits.Value()
	}
	s.WeeklyHours = WeeklyHours(courses, sessionHours)
	s.Load = ClassifyLoad(s.WeeklyHours, t)
	return s
}

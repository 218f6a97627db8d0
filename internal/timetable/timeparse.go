// Package timetable is the scheduling core: slot catalog lookup, time-string
// parsing, course slot resolution, grid/conflict building, workload stats,
// and calendar export. Everything here is pure; all inputs arrive as explicit
// parameters and malformed schedule data degrades to sentinels instead of
// failing the computation.
package timetable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coursemash/coursemash/pkg/model"
)

var dashReplacer = strings.NewReplacer("–", "-", "—", "-", "--", "-")

// ParseTimeRange converts a textual time range into start/end minutes of day.
// Accepted forms: "08:30 AM - 09:50 AM", "14:00-15:20", "8:30-9:50", with one
// or two hyphens (or an en/em dash) as separator. Malformed input returns
// ok=false; callers treat that as Flexible and sort it last.
func ParseTimeRange(raw string) (model.TimeRange, bool) {
	parts := strings.SplitN(dashReplacer.Replace(raw), "-", 2)
	if len(parts) != 2 {
		return model.TimeRange{}, false
	}
	start, ok := parseClock(parts[0])
	if !ok {
		return model.TimeRange{}, false
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return model.TimeRange{}, false
	}
	return model.TimeRange{Start: start, End: end}, true
}

// parseClock parses "H:MM" or "HH:MM" with an optional case-insensitive
// AM/PM suffix into minutes from midnight.
func parseClock(raw string) (int, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, false
	}

	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	if len(fields) == 2 {
		if hours < 1 || hours > 12 {
			return 0, false
		}
		switch strings.ToUpper(fields[1]) {
		case "AM":
			if hours == 12 {
				hours = 0
			}
		case "PM":
			if hours != 12 {
				hours += 12
			}
		default:
			return 0, false
		}
	} else if hours < 0 || hours > 23 {
		return 0, false
	}

	return hours*60 + minutes, true
}

// FormatTimeRange renders a range in the canonical 12-hour form, e.g.
// "08:30 AM - 09:50 AM". The unknown sentinel renders as "Flexible".
func FormatTimeRange(t model.TimeRange) string {
	if t.IsZero() {
		return "Flexible"
	}
	return formatClock(t.Start) + " - " + formatClock(t.End)
}

func formatClock(minutes int) string {
	h, m := minutes/60, minutes%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}

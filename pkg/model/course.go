package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SessionType identifies one of a course's independently scheduled parts.
type SessionType string

const (
	SessionLecture  SessionType = "lecture"
	SessionLab      SessionType = "lab"
	SessionTutorial SessionType = "tutorial"
)

// SessionTypes lists all session types in display order.
var SessionTypes = []SessionType{SessionLecture, SessionLab, SessionTutorial}

// SessionInfo is the raw schedule entry for one session type as it arrives
// from the catalog feed: index 0 holds the comma-separated slot codes, index 1
// the location string, and an optional index 2 an instructor override.
type SessionInfo []string

func (s SessionInfo) RawSlots() string {
	if len(s) > 0 {
		return s[0]
	}
	return ""
}

func (s SessionInfo) RawLocation() string {
	if len(s) > 1 {
		return s[1]
	}
	return ""
}

func (s SessionInfo) RawInstructor() string {
	if len(s) > 2 {
		return s[2]
	}
	return ""
}

// UnmarshalJSON accepts both the plain-string form ["A1,C1", "(LHC 101)"] and
// the catalog feed's wrapped form [{"raw": "A1,C1"}, {"raw": "(LHC 101)"}].
func (s *SessionInfo) UnmarshalJSON(data []byte) error {
	var plain []string
	if err := json.Unmarshal(data, &plain); err == nil {
		*s = plain
		return nil
	}
	var wrapped []struct {
		Raw string `json:"raw"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	out := make([]string, len(wrapped))
	for i, w := range wrapped {
		out[i] = w.Raw
	}
	*s = out
	return nil
}

// Credits tolerates both a plain numeric total and the structured "L-T-P-C"
// form where the last dash-delimited component is the credit count.
type Credits string

func (c *Credits) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Credits(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Credits(n.String())
	return nil
}

// Value returns the credit count, or 0 if the string is malformed.
func (c Credits) Value() int {
	parts := strings.Split(string(c), "-")
	last := strings.TrimSpace(parts[len(parts)-1])
	n, err := strconv.Atoi(last)
	if err != nil {
		// "4.0" style totals show up in some feeds
		f, ferr := strconv.ParseFloat(last, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

// Course is a catalog or user-authored course record. The scheduling core
// treats it as an immutable snapshot and derives everything else from it.
type Course struct {
	ID          string                      `json:"id,omitempty"`
	Code        string                      `json:"code"`
	Name        string                      `json:"name"`
	Credits     Credits                     `json:"credits,omitempty"`
	Instructors []string                    `json:"instructors,omitempty"`
	Schedule    map[SessionType]SessionInfo `json:"schedule,omitempty"`
	IsCustom    bool                        `json:"isCustom,omitempty"`
	HasNoSlot   bool                        `json:"hasNoSlot,omitempty"`
}

// Session returns the schedule entry for the given session type. A missing
// schedule map or session entry yields an empty SessionInfo.
func (c *Course) Session(t SessionType) SessionInfo {
	if c.Schedule == nil {
		return nil
	}
	return c.Schedule[t]
}

// InstructorDisplay resolves the course-level instructor for display.
func (c *Course) InstructorDisplay() string {
	names := make([]string, 0, len(c.Instructors))
	for _, n := range c.Instructors {
		if strings.TrimSpace(n) != "" {
			names = append(names, strings.TrimSpace(n))
		}
	}
	if len(names) == 0 {
		return "Staff"
	}
	return strings.Join(names, ", ")
}

// NormalizeCode canonicalizes a course code for matching: lower-cased with
// all whitespace stripped, so "CS 101" and "cs101" compare equal.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.Join(strings.Fields(code), ""))
}

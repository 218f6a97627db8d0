package model

// TimeRange is a clock interval in minutes from midnight. The zero value
// marks an unknown ("Flexible") time; no real class runs midnight-to-midnight.
type TimeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IsZero reports whether the range is the unknown sentinel.
func (t TimeRange) IsZero() bool {
	return t.Start == 0 && t.End == 0
}

// Placement is one resolved weekly occupancy of a course: a slot code on a
// day, for one session type. Derived fresh from a Course and the slot catalog
// on every read, never persisted.
type Placement struct {
	CourseCode string      `json:"courseCode"`
	CourseName string      `json:"courseName"`
	Session    SessionType `json:"session"`
	SlotCode   string      `json:"slotCode"`
	Day        int         `json:"day"` // -1 when the slot code is not in the catalog
	Row        int         `json:"row"` // -1 when the slot code is not in the catalog
	Location   string      `json:"location"`
	Instructor string      `json:"instructor"`
	Time       TimeRange   `json:"time"`
}

// Scheduled reports whether the placement occupies a grid cell.
func (p Placement) Scheduled() bool {
	return p.Day >= 0 && p.Row >= 0
}

// Package store keeps per-user enrolled-course lists in memory. It stands in
// for the external enrollment collaborator; the scheduling core only ever
// sees the snapshots it hands out.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/coursemash/coursemash/pkg/model"
)

var (
	ErrNotFound  = errors.New("store: schedule not found")
	ErrDuplicate = errors.New("store: course already in schedule")
	ErrNoCourse  = errors.New("store: course not in schedule")
)

// Store is a mutex-guarded map of schedule id to enrolled courses. Courses
// are kept in enrollment order; that order is meaningful downstream.
type Store struct {
	mu        sync.RWMutex
	schedules map[string][]model.Course
}

func New() *Store {
	return &Store{schedules: make(map[string][]model.Course)}
}

// Create registers an empty schedule and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.schedules[id] = []model.Course{}
	s.mu.Unlock()
	return id
}

// Courses returns a copy of the enrolled-course snapshot.
func (s *Store) Courses(id string) ([]model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses, ok := s.schedules[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]model.Course, len(courses))
	copy(out, courses)
	return out, nil
}

// Add appends a course to a schedule. Duplicate codes (case/whitespace-
// insensitive) are rejected.
func (s *Store) Add(id string, c model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	courses, ok := s.schedules[id]
	if !ok {
		return ErrNotFound
	}
	key := model.NormalizeCode(c.Code)
	for _, existing := range courses {
		if model.NormalizeCode(existing.Code) == key {
			return ErrDuplicate
		}
	}
	s.schedules[id] = append(courses, c)
	return nil
}

// Remove drops a course from a schedule by code.
func (s *Store) Remove(id string, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	courses, ok := s.schedules[id]
	if !ok {
		return ErrNotFound
	}
	key := model.NormalizeCode(code)
	for i, existing := range courses {
		if model.NormalizeCode(existing.Code) == key {
			s.schedules[id] = append(courses[:i], courses[i+1:]...)
			return nil
		}
	}
	return ErrNoCourse
}

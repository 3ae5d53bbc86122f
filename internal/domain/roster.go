package domain

import "time"

// Instructor represents a club instructor.
// The scheduling validator uses the roster as its display-name directory.
type Instructor struct {
	ID     int64
	Name   string
	Email  *string
	Phone  *string
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Student represents an enrolled student
type Student struct {
	ID     int64
	Name   string
	Email  *string
	Phone  *string
	Level  *string // self-reported playing level, free text
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

// Business rules for class scheduling.
// These match the club's observed operating policy and are deliberately
// compile-time constants rather than per-club configuration.
const (
	MinClassDurationMinutes = 30
	MaxClassDurationMinutes = 180 // longer classes are allowed, with a warning

	ClubOpeningMinutes = 6 * 60  // 06:00
	ClubClosingMinutes = 22 * 60 // 22:00

	MaxIndividualClassStudents = 1
	GroupClassWarningThreshold = 4 // bigger groups trigger an advisory

	MaxSuggestedSlots = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

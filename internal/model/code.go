package model

import (
	"strings"
	"time"
)

// CodeValue is the textual value of an exam access code.
// Code values are compared case-insensitively; NormalizeCode is the
// canonical form used everywhere in the registry.
type CodeValue string

// NormalizeCode upper-cases a raw code string into its canonical form.
func NormalizeCode(raw string) CodeValue {
	return CodeValue(strings.ToUpper(strings.TrimSpace(raw)))
}

// CodeStatus represents the lifecycle state of an access code.
type CodeStatus string

const (
	CodeStatusActive CodeStatus = "active"
	// CodeStatusCompleted is modeled but no operation currently
	// transitions a code into it: codes stay usable after submission.
	CodeStatusCompleted CodeStatus = "completed"
)

// AccessCode is a short token gating entry to an exam session.
type AccessCode struct {
	Value     CodeValue
	Status    CodeStatus
	CreatedAt time.Time
	// UsedBy would bind a code to the student who consumed it. Nothing
	// assigns it yet; it is kept for the intended code-to-student
	// binding.
	UsedBy string
}

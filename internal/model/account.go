package model

import "time"

// ProctorAccount represents a proctor login account.
// Accounts are provisioned from configuration at process start and are
// immutable afterwards.
type ProctorAccount struct {
	Username     string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}

// RoleProctor is the role carried by authenticated proctor sessions.
const RoleProctor = "proctor"

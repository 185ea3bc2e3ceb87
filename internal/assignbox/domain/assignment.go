package domain

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// IsDecision reports whether an admin may move an assignment into s.
// There is no terminal state: accepted and rejected can follow each other.
func (s Status) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s Status) Valid() bool {
	return s == StatusPending || s.IsDecision()
}

type Assignment struct {
	ID        string
	UserID    string // submitter
	Task      string
	AdminID   string // reviewer
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

// Issue is a seller's free-text report that no canonical supplier fits a
// group. Informational only: it never changes the group's derived status.
type Issue struct {
	ID          string
	OwnerID     string
	PacketID    string
	GroupID     string
	INNNorm     *string
	RawSupplier string
	Comment     string
	CreatedAt   time.Time
}

type IssueRepository interface {
	CreateIssue(issue *Issue) error
	ListIssues() ([]*Issue, error)
}

package domain

import "time"

type ModerationDecision string

const (
	DecisionApproved ModerationDecision = "APPROVED"
	DecisionRejected ModerationDecision = "REJECTED"
)

// ModerationEvent is one append-only ledger row per admin decision. Group and
// supplier text is snapshotted at decision time so the history stays readable
// after the registry changes or a supplier is deleted.
type ModerationEvent struct {
	ID                    string
	OwnerID               string
	PacketID              string
	GroupID               string
	MappingID             string
	Decision              ModerationDecision
	DecidedAt             time.Time
	DecidedBy             string
	RejectReasonCode      string
	RejectReasonLabel     string
	RejectCommentInternal string
	RawSupplier           string
	INNNorm               *string
	CanonicalSupplier     string
	CanonicalINN          string
	CanonicalCity         string
}

type LedgerFilter struct {
	// Query matches case-insensitively against owner id or packet id.
	Query  string
	Limit  int
	Offset int
}

type LedgerRepository interface {
	AppendEvent(event *ModerationEvent) error
	// QueryEvents pages the ledger ordered by decision time descending.
	QueryEvents(filter LedgerFilter) ([]*ModerationEvent, error)
}

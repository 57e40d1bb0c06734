package domain

import "time"

type MappingStatus string

const (
	MappingPending  MappingStatus = "PENDING"
	MappingApproved MappingStatus = "APPROVED"
	MappingRejected MappingStatus = "REJECTED"
)

// SupplierMapping is a seller's request to link one price group to one
// canonical supplier. Rows are never deleted: a new request on the same group
// supersedes the previous one, and only the group's latest mapping counts.
type SupplierMapping struct {
	ID                  string
	Seq                 int64
	GroupID             string
	CanonicalSupplierID string
	OwnerID             string
	PacketID            string
	Status              MappingStatus
	RawSupplier         string
	INNNorm             *string
	CreatedAt           time.Time
	DecidedAt           *time.Time
	DecidedBy           string
	RejectReasonCode    string
	RejectReasonLabel   string
	CommentInternal     string
	CanonicalSupplier   *Supplier
}

// MappingDecision carries one admin decision into the repository. The
// repository applies it atomically: status flip, decision metadata and the
// ledger event land in a single transaction.
type MappingDecision struct {
	MappingID       string
	Decision        ModerationDecision
	DecidedBy       string
	ReasonCode      string
	ReasonLabel     string
	CommentInternal string
	DecidedAt       time.Time
}

type ApprovedMappingsFilter struct {
	OwnerID  *string
	PacketID *string
	From     *time.Time
	To       *time.Time
}

type MappingRepository interface {
	// CreateMapping inserts the mapping and repoints its group's
	// latest_mapping_id in one transaction.
	CreateMapping(mapping *SupplierMapping) error
	// DecideMapping flips a PENDING latest mapping to a terminal status and
	// appends the moderation event. Fails with ErrNotPending / ErrStaleMapping.
	DecideMapping(decision *MappingDecision) (*SupplierMapping, *ModerationEvent, error)
	// ListPending returns PENDING mappings that are still their group's latest,
	// oldest first.
	ListPending() ([]*SupplierMapping, error)
	ListApproved(filter ApprovedMappingsFilter) ([]*SupplierMapping, error)
}

package domain

import "time"

type GroupStatus string

const (
	GroupUnmapped GroupStatus = "UNMAPPED"
	GroupPending  GroupStatus = GroupStatus(MappingPending)
	GroupApproved GroupStatus = GroupStatus(MappingApproved)
	GroupRejected GroupStatus = GroupStatus(MappingRejected)
)

// SupplierGroup aggregates price rows sharing (owner, packet, normalized INN,
// raw supplier name). Groups are created and updated only by import and are
// never deleted. LatestMappingID is the explicit pointer the status derivation
// reads; it is repointed transactionally on every mapping creation.
type SupplierGroup struct {
	ID              string
	OwnerID         string
	PacketID        string
	INNNorm         *string
	RawSupplier     string
	ItemsCount      int64
	INNInvalid      bool
	LatestMappingID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GroupStatusView is the seller-facing read model: the group joined with its
// latest mapping. Internal moderation comments never appear here.
type GroupStatusView struct {
	Group               SupplierGroup
	Status              GroupStatus
	CanonicalSupplierID *string
	CanonicalSupplier   *string
	LatestDecisionAt    *time.Time
	RejectReasonLabel   *string
}

type GroupRepository interface {
	// IngestPriceItem persists the row and folds it into its group in one
	// transaction: the group is created with items_count=1 or incremented.
	IngestPriceItem(item *PriceItem) (created bool, err error)
	GetGroupByID(groupID string) (*SupplierGroup, error)
	ListGroupsByScope(ownerID, packetID string) ([]*GroupStatusView, error)
}

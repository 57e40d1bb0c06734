package kafka

import "time"

// ModerationEventMessage mirrors one ledger row onto the moderation-events
// topic for downstream consumers (notifications, analytics).
type ModerationEventMessage struct {
	EventID           string    `json:"event_id"`
	OwnerID           string    `json:"owner_id"`
	PacketID          string    `json:"packet_id"`
	GroupID           string    `json:"group_id"`
	MappingID         string    `json:"mapping_id"`
	Decision          string    `json:"decision"`
	DecidedAt         time.Time `json:"decided_at"`
	DecidedBy         string    `json:"decided_by"`
	RejectReasonCode  string    `json:"reject_reason_code,omitempty"`
	RejectReasonLabel string    `json:"reject_reason_label,omitempty"`
	RawSupplier       string    `json:"raw_supplier"`
	CanonicalSupplier string    `json:"canonical_supplier,omitempty"`
}

package models

import "time"

// Append-only: rows are inserted on decision and never updated or deleted.
type ModerationEventModel struct {
	ID                    string `gorm:"primaryKey"`
	OwnerID               string `gorm:"index"`
	PacketID              string `gorm:"index"`
	GroupID               string `gorm:"index"`
	MappingID             string `gorm:"index"`
	Decision              string `gorm:"index"`
	DecidedAt             time.Time `gorm:"index"`
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

package models

import "time"

// Seq is a bigserial used as the created_at tie-break so "latest mapping"
// stays well-defined under clock skew.
type SupplierMappingModel struct {
	ID                  string `gorm:"primaryKey"`
	Seq                 int64  `gorm:"autoIncrement;uniqueIndex"`
	GroupID             string `gorm:"index"`
	CanonicalSupplierID string `gorm:"index"`
	OwnerID             string `gorm:"index"`
	PacketID            string `gorm:"index"`
	Status              string `gorm:"index"`
	RawSupplier         string
	INNNorm             *string
	CreatedAt           time.Time
	DecidedAt           *time.Time
	DecidedBy           string
	RejectReasonCode    string
	RejectReasonLabel   string
	CommentInternal     string
}

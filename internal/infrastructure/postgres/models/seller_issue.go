package models

import "time"

type SellerIssueModel struct {
	ID          string `gorm:"primaryKey"`
	OwnerID     string `gorm:"index"`
	PacketID    string `gorm:"index"`
	GroupID     string `gorm:"index"`
	INNNorm     *string
	RawSupplier string
	Comment     string
	CreatedAt   time.Time
}

package models

import "time"

type SellerTokenModel struct {
	ID        string `gorm:"primaryKey"`
	Token     string `gorm:"uniqueIndex"`
	OwnerID   string `gorm:"index"`
	PacketID  string `gorm:"index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

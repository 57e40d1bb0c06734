package models

import "time"

type PriceItemModel struct {
	ID          string `gorm:"primaryKey"`
	OwnerID     string `gorm:"index"`
	PacketID    string `gorm:"index"`
	RawINN      string
	INNNorm     *string `gorm:"index"`
	INNInvalid  bool
	RawSupplier string `gorm:"index"`
	ItemID      string
	CreatedAt   time.Time
}

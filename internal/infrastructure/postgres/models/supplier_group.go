package models

import "time"

type SupplierGroupModel struct {
	ID              string  `gorm:"primaryKey"`
	OwnerID         string  `gorm:"index;uniqueIndex:uq_group"`
	PacketID        string  `gorm:"index;uniqueIndex:uq_group"`
	INNNorm         *string `gorm:"index;uniqueIndex:uq_group"`
	RawSupplier     string  `gorm:"index;uniqueIndex:uq_group"`
	ItemsCount      int64
	INNInvalid      bool
	LatestMappingID *string `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

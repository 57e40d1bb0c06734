package models

import "time"

type SupplierModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"index"`
	INN       string `gorm:"index"`
	KPP       string
	Country   string
	City      string
	Address   string
	URL       string
	Branch    string
	CreatedAt time.Time
}

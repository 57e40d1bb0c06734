package postgres

import (
	"log"

	"github.com/pricelink/supplier-mapping-service/internal/config"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MappingConfig) *gorm.DB {
	dsn := cfg.MappingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.PriceItemModel{},
		&models.SupplierGroupModel{},
		&models.SupplierModel{},
		&models.SupplierMappingModel{},
		&models.ModerationEventModel{},
		&models.SellerTokenModel{},
		&models.SellerIssueModel{},
	)

	return db
}

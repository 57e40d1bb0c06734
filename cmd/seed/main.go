// Seed fills a development database with registry entries, demo price rows and
// seller tokens. Tokens are printed so they can be pasted into the frontends.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/joho/godotenv"

	"github.com/pricelink/supplier-mapping-service/internal/config"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/repository"
	"github.com/pricelink/supplier-mapping-service/internal/logging"
	"github.com/pricelink/supplier-mapping-service/internal/usecase"
	pricedto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/price"
)

type batch struct {
	ownerID  string
	packetID string
	rows     []rowSpec
}

type rowSpec struct {
	inn      string
	supplier string
	count    int
}

func main() {
	godotenv.Load()
	cfg := config.MustLoad()
	logging.Setup(cfg.LogConfig)
	log := slog.Default()

	db := postgres.MustInitDB(cfg)
	supplierRepo := repository.NewDefaultSupplierRepository(db)
	groupRepo := repository.NewDefaultGroupRepository(db)
	tokenRepo := repository.NewDefaultTokenRepository(db)
	importUc := usecase.NewDefaultImportUsecase(groupRepo, nil)

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		log.Error("failed to init id generator", "error", err.Error())
		os.Exit(1)
	}

	suppliers := []*domain.Supplier{
		{
			ID:        idGenerator(),
			Name:      "ООО «Росско»",
			INN:       "7701234560",
			Country:   "Россия",
			City:      "Москва",
			CreatedAt: time.Now().UTC(),
		},
		{
			ID:        idGenerator(),
			Name:      "АО «Берг»",
			INN:       "7807654325",
			Country:   "Россия",
			City:      "Санкт-Петербург",
			CreatedAt: time.Now().UTC(),
		},
	}
	for _, supplier := range suppliers {
		if err := supplierRepo.CreateSupplier(supplier); err != nil {
			log.Error("failed to seed supplier", "name", supplier.Name, "error", err.Error())
			os.Exit(1)
		}
		log.Info("seeded supplier", "id", supplier.ID, "name", supplier.Name)
	}

	batches := []batch{
		{
			ownerID:  "demo-owner",
			packetID: "demo-packet",
			rows: []rowSpec{
				{inn: "7701234560", supplier: "Росско", count: 100},
				{inn: "7807654325", supplier: "БЕРГ", count: 50},
			},
		},
		{
			ownerID:  "owner-2",
			packetID: "packet-2",
			rows: []rowSpec{
				{inn: "7701234560", supplier: "ООО Росско", count: 60},
				{inn: "", supplier: "Неизвестный поставщик", count: 40},
			},
		},
		{
			ownerID:  "owner-3",
			packetID: "packet-3",
			rows: []rowSpec{
				{inn: "78-0765-4325", supplier: "Berg", count: 30},
				{inn: "12345", supplier: "Плохой ИНН", count: 20},
			},
		},
	}

	for _, b := range batches {
		var items []pricedto.PriceItemInput
		for _, row := range b.rows {
			for i := 0; i < row.count; i++ {
				items = append(items, pricedto.PriceItemInput{
					OwnerID:     b.ownerID,
					PacketID:    b.packetID,
					RawINN:      row.inn,
					RawSupplier: row.supplier,
					ItemID:      fmt.Sprintf("%s-%s-%d", b.packetID, row.supplier, i),
				})
			}
		}

		result, err := importUc.ImportItems(items)
		if err != nil {
			log.Error("failed to seed price items", "owner", b.ownerID, "error", err.Error())
			os.Exit(1)
		}
		log.Info("seeded price batch",
			"owner", b.ownerID,
			"packet", b.packetID,
			"items", result.ItemsIngested,
			"groups_created", result.GroupsCreated,
		)

		token := &domain.SellerToken{
			ID:        idGenerator(),
			Token:     uuid.NewString(),
			OwnerID:   b.ownerID,
			PacketID:  b.packetID,
			ExpiresAt: time.Now().UTC().Add(7 * 24 * time.Hour),
			CreatedAt: time.Now().UTC(),
		}
		if err := tokenRepo.CreateToken(token); err != nil {
			log.Error("failed to seed token", "owner", b.ownerID, "error", err.Error())
			os.Exit(1)
		}
		fmt.Printf("seller token %s/%s: %s\n", b.ownerID, b.packetID, token.Token)
	}
}

package usecase

import (
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/metrics"
	"github.com/pricelink/supplier-mapping-service/internal/normalize"
	pricedto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/price"
)

type ImportUsecase interface {
	ImportItems(rows []pricedto.PriceItemInput) (*pricedto.ImportResult, error)
}

type DefaultImportUsecase struct {
	groupRepo domain.GroupRepository
	metrics   *metrics.MappingMetrics
}

func NewDefaultImportUsecase(groupRepo domain.GroupRepository, mappingMetrics *metrics.MappingMetrics) *DefaultImportUsecase {
	return &DefaultImportUsecase{
		groupRepo: groupRepo,
		metrics:   mappingMetrics,
	}
}

// ImportItems folds each row into its supplier group. The group key is
// (owner, packet, normalized INN, raw supplier name); re-importing identical
// rows increments items_count, it never duplicates a group.
func (uc *DefaultImportUsecase) ImportItems(rows []pricedto.PriceItemInput) (*pricedto.ImportResult, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	result := &pricedto.ImportResult{}
	now := time.Now().UTC()
	for _, row := range rows {
		innNorm, innInvalid := normalize.INN(row.RawINN)
		item := &domain.PriceItem{
			ID:          idGenerator(),
			OwnerID:     row.OwnerID,
			PacketID:    row.PacketID,
			RawINN:      row.RawINN,
			INNNorm:     innNorm,
			INNInvalid:  innInvalid,
			RawSupplier: row.RawSupplier,
			ItemID:      row.ItemID,
			CreatedAt:   now,
		}
		created, err := uc.groupRepo.IngestPriceItem(item)
		if err != nil {
			return nil, err
		}
		result.ItemsIngested++
		if created {
			result.GroupsCreated++
		} else {
			result.GroupsUpdated++
		}
		if uc.metrics != nil {
			uc.metrics.PriceItemsImportedTotal.WithLabelValues(row.OwnerID, row.PacketID).Inc()
			if created {
				uc.metrics.GroupsCreatedTotal.WithLabelValues(row.OwnerID, row.PacketID).Inc()
			}
		}
	}
	return result, nil
}

package mappers

import (
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
)

func ToDomainGroup(model *models.SupplierGroupModel) *domain.SupplierGroup {
	return &domain.SupplierGroup{
		ID:              model.ID,
		OwnerID:         model.OwnerID,
		PacketID:        model.PacketID,
		INNNorm:         model.INNNorm,
		RawSupplier:     model.RawSupplier,
		ItemsCount:      model.ItemsCount,
		INNInvalid:      model.INNInvalid,
		LatestMappingID: model.LatestMappingID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMGroup(group *domain.SupplierGroup) *models.SupplierGroupModel {
	return &models.SupplierGroupModel{
		ID:              group.ID,
		OwnerID:         group.OwnerID,
		PacketID:        group.PacketID,
		INNNorm:         group.INNNorm,
		RawSupplier:     group.RawSupplier,
		ItemsCount:      group.ItemsCount,
		INNInvalid:      group.INNInvalid,
		LatestMappingID: group.LatestMappingID,
		CreatedAt:       group.CreatedAt,
		UpdatedAt:       group.UpdatedAt,
	}
}

func ToGORMPriceItem(item *domain.PriceItem) *models.PriceItemModel {
	return &models.PriceItemModel{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		PacketID:    item.PacketID,
		RawINN:      item.RawINN,
		INNNorm:     item.INNNorm,
		INNInvalid:  item.INNInvalid,
		RawSupplier: item.RawSupplier,
		ItemID:      item.ItemID,
		CreatedAt:   item.CreatedAt,
	}
}

package mappers

import (
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
)

func ToDomainMapping(model *models.SupplierMappingModel) *domain.SupplierMapping {
	return &domain.SupplierMapping{
		ID:                  model.ID,
		Seq:                 model.Seq,
		GroupID:             model.GroupID,
		CanonicalSupplierID: model.CanonicalSupplierID,
		OwnerID:             model.OwnerID,
		PacketID:            model.PacketID,
		Status:              domain.MappingStatus(model.Status),
		RawSupplier:         model.RawSupplier,
		INNNorm:             model.INNNorm,
		CreatedAt:           model.CreatedAt,
		DecidedAt:           model.DecidedAt,
		DecidedBy:           model.DecidedBy,
		RejectReasonCode:    model.RejectReasonCode,
		RejectReasonLabel:   model.RejectReasonLabel,
		CommentInternal:     model.CommentInternal,
	}
}

func ToGORMMapping(mapping *domain.SupplierMapping) *models.SupplierMappingModel {
	return &models.SupplierMappingModel{
		ID:                  mapping.ID,
		Seq:                 mapping.Seq,
		GroupID:             mapping.GroupID,
		CanonicalSupplierID: mapping.CanonicalSupplierID,
		OwnerID:             mapping.OwnerID,
		PacketID:            mapping.PacketID,
		Status:              string(mapping.Status),
		RawSupplier:         mapping.RawSupplier,
		INNNorm:             mapping.INNNorm,
		CreatedAt:           mapping.CreatedAt,
		DecidedAt:           mapping.DecidedAt,
		DecidedBy:           mapping.DecidedBy,
		RejectReasonCode:    mapping.RejectReasonCode,
		RejectReasonLabel:   mapping.RejectReasonLabel,
		CommentInternal:     mapping.CommentInternal,
	}
}

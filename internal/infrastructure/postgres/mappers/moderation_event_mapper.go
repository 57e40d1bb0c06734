package mappers

import (
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
)

func ToDomainModerationEvent(model *models.ModerationEventModel) *domain.ModerationEvent {
	return &domain.ModerationEvent{
		ID:                    model.ID,
		OwnerID:               model.OwnerID,
		PacketID:              model.PacketID,
		GroupID:               model.GroupID,
		MappingID:             model.MappingID,
		Decision:              domain.ModerationDecision(model.Decision),
		DecidedAt:             model.DecidedAt,
		DecidedBy:             model.DecidedBy,
		RejectReasonCode:      model.RejectReasonCode,
		RejectReasonLabel:     model.RejectReasonLabel,
		RejectCommentInternal: model.RejectCommentInternal,
		RawSupplier:           model.RawSupplier,
		INNNorm:               model.INNNorm,
		CanonicalSupplier:     model.CanonicalSupplier,
		CanonicalINN:          model.CanonicalINN,
		CanonicalCity:         model.CanonicalCity,
	}
}

func ToGORMModerationEvent(event *domain.ModerationEvent) *models.ModerationEventModel {
	return &models.ModerationEventModel{
		ID:                    event.ID,
		OwnerID:               event.OwnerID,
		PacketID:              event.PacketID,
		GroupID:               event.GroupID,
		MappingID:             event.MappingID,
		Decision:              string(event.Decision),
		DecidedAt:             event.DecidedAt,
		DecidedBy:             event.DecidedBy,
		RejectReasonCode:      event.RejectReasonCode,
		RejectReasonLabel:     event.RejectReasonLabel,
		RejectCommentInternal: event.RejectCommentInternal,
		RawSupplier:           event.RawSupplier,
		INNNorm:               event.INNNorm,
		CanonicalSupplier:     event.CanonicalSupplier,
		CanonicalINN:          event.CanonicalINN,
		CanonicalCity:         event.CanonicalCity,
	}
}

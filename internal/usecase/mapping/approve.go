package usecase

import (
	"log/slog"
	"time"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
	publisher "github.com/pricelink/supplier-mapping-service/internal/infrastructure/kafka"
)

// Approve flips a PENDING latest mapping to APPROVED. The repository enforces
// the state guards: a decided mapping fails with ErrNotPending, a superseded
// one with ErrStaleMapping.
func (uc *DefaultMappingUsecase) Approve(mappingID, decidedBy string) (*domain.SupplierMapping, error) {
	mapping, event, err := uc.mappingRepo.DecideMapping(&domain.MappingDecision{
		MappingID: mappingID,
		Decision:  domain.DecisionApproved,
		DecidedBy: decidedBy,
		DecidedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	uc.publishDecision(event)
	uc.observeDecision(mapping)
	return mapping, nil
}

func (uc *DefaultMappingUsecase) publishDecision(event *domain.ModerationEvent) {
	if uc.kafkaPublisher == nil {
		return
	}
	go func(message publisher.ModerationEventMessage) {
		if err := uc.kafkaPublisher.PublishModeration(message); err != nil {
			slog.Error("failed to publish kafka moderation event", "mapping_id", message.MappingID, "error", err.Error())
		}
	}(publisher.ModerationEventMessage{
		EventID:           event.ID,
		OwnerID:           event.OwnerID,
		PacketID:          event.PacketID,
		GroupID:           event.GroupID,
		MappingID:         event.MappingID,
		Decision:          string(event.Decision),
		DecidedAt:         event.DecidedAt,
		DecidedBy:         event.DecidedBy,
		RejectReasonCode:  event.RejectReasonCode,
		RejectReasonLabel: event.RejectReasonLabel,
		RawSupplier:       event.RawSupplier,
		CanonicalSupplier: event.CanonicalSupplier,
	})
}

func (uc *DefaultMappingUsecase) observeDecision(mapping *domain.SupplierMapping) {
	if uc.metrics == nil || mapping.DecidedAt == nil {
		return
	}
	uc.metrics.DecisionsTotal.WithLabelValues(string(mapping.Status)).Inc()
	uc.metrics.DecisionLatency.WithLabelValues(string(mapping.Status)).
		Observe(mapping.DecidedAt.Sub(mapping.CreatedAt).Seconds())
	if mapping.Status == domain.MappingRejected && mapping.RejectReasonCode != "" {
		uc.metrics.RejectReasonsTotal.WithLabelValues(mapping.RejectReasonCode).Inc()
	}
}

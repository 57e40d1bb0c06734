package usecase

import (
	"time"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
	mappingdto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/mapping"
)

// Reject requires a recognized reason code from the fixed catalogue. The
// seller sees the reason label; the internal comment stays admin-only.
func (uc *DefaultMappingUsecase) Reject(input *mappingdto.RejectInput) (*domain.SupplierMapping, error) {
	label, ok := domain.ReasonLabel(input.ReasonCode)
	if !ok {
		return nil, domain.ErrReasonRequired
	}

	mapping, event, err := uc.mappingRepo.DecideMapping(&domain.MappingDecision{
		MappingID:       input.MappingID,
		Decision:        domain.DecisionRejected,
		DecidedBy:       input.DecidedBy,
		ReasonCode:      input.ReasonCode,
		ReasonLabel:     label,
		CommentInternal: input.CommentInternal,
		DecidedAt:       time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	uc.publishDecision(event)
	uc.observeDecision(mapping)
	return mapping, nil
}

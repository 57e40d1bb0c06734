package usecase

import "github.com/pricelink/supplier-mapping-service/internal/domain"

const defaultLedgerPageSize = 50

type LedgerUsecase interface {
	History(query string, limit, offset int) ([]*domain.ModerationEvent, error)
}

type DefaultLedgerUsecase struct {
	ledgerRepo domain.LedgerRepository
}

func NewDefaultLedgerUsecase(ledgerRepo domain.LedgerRepository) *DefaultLedgerUsecase {
	return &DefaultLedgerUsecase{ledgerRepo: ledgerRepo}
}

func (uc *DefaultLedgerUsecase) History(query string, limit, offset int) ([]*domain.ModerationEvent, error) {
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return uc.ledgerRepo.QueryEvents(domain.LedgerFilter{
		Query:  query,
		Limit:  limit,
		Offset: offset,
	})
}

package repository

import (
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/mappers"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultLedgerRepository reads the append-only moderation ledger. Events are
// written by DecideMapping inside the decision transaction; nothing here ever
// updates or deletes a row.
type DefaultLedgerRepository struct {
	db *gorm.DB
}

func NewDefaultLedgerRepository(db *gorm.DB) *DefaultLedgerRepository {
	return &DefaultLedgerRepository{db: db}
}

func (r *DefaultLedgerRepository) AppendEvent(event *domain.ModerationEvent) error {
	return r.db.Create(mappers.ToGORMModerationEvent(event)).Error
}

func (r *DefaultLedgerRepository) QueryEvents(filter domain.LedgerFilter) ([]*domain.ModerationEvent, error) {
	query := r.db.Model(&models.ModerationEventModel{})
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("owner_id ILIKE ? OR packet_id ILIKE ?", pattern, pattern)
	}

	var eventModels []models.ModerationEventModel
	if err := query.
		Order("decided_at desc").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&eventModels).Error; err != nil {
		return nil, err
	}

	events := make([]*domain.ModerationEvent, len(eventModels))
	for i := range eventModels {
		events[i] = mappers.ToDomainModerationEvent(&eventModels[i])
	}
	return events, nil
}

package repository

import (
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/mappers"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultIssueRepository struct {
	db *gorm.DB
}

func NewDefaultIssueRepository(db *gorm.DB) *DefaultIssueRepository {
	return &DefaultIssueRepository{db: db}
}

func (r *DefaultIssueRepository) CreateIssue(issue *domain.Issue) error {
	return r.db.Create(mappers.ToGORMIssue(issue)).Error
}

func (r *DefaultIssueRepository) ListIssues() ([]*domain.Issue, error) {
	var issueModels []models.SellerIssueModel
	if err := r.db.Order("created_at desc").Find(&issueModels).Error; err != nil {
		return nil, err
	}

	issues := make([]*domain.Issue, len(issueModels))
	for i := range issueModels {
		issues[i] = mappers.ToDomainIssue(&issueModels[i])
	}
	return issues, nil
}

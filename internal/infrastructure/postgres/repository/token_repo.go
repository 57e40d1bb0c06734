package repository

import (
	"errors"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/mappers"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTokenRepository struct {
	db *gorm.DB
}

func NewDefaultTokenRepository(db *gorm.DB) *DefaultTokenRepository {
	return &DefaultTokenRepository{db: db}
}

func (r *DefaultTokenRepository) GetByToken(token string) (*domain.SellerToken, error) {
	var tokenModel models.SellerTokenModel
	if err := r.db.First(&tokenModel, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}
	return mappers.ToDomainToken(&tokenModel), nil
}

func (r *DefaultTokenRepository) CreateToken(token *domain.SellerToken) error {
	return r.db.Create(mappers.ToGORMToken(token)).Error
}

package usecase

import (
	"time"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

type TokenUsecase interface {
	// Resolve validates a seller token and returns its (owner, packet) scope.
	Resolve(token string) (*domain.SellerToken, error)
}

type DefaultTokenUsecase struct {
	tokenRepo domain.TokenRepository
	now       func() time.Time
}

func NewDefaultTokenUsecase(tokenRepo domain.TokenRepository) *DefaultTokenUsecase {
	return &DefaultTokenUsecase{
		tokenRepo: tokenRepo,
		now:       time.Now,
	}
}

func (uc *DefaultTokenUsecase) Resolve(token string) (*domain.SellerToken, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	sellerToken, err := uc.tokenRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	// A token is expired at its expiry instant, not one tick later.
	if !uc.now().Before(sellerToken.ExpiresAt) {
		return nil, domain.ErrTokenExpired
	}
	return sellerToken, nil
}

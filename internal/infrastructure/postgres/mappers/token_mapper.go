package mappers

import (
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
)

func ToDomainToken(model *models.SellerTokenModel) *domain.SellerToken {
	return &domain.SellerToken{
		ID:        model.ID,
		Token:     model.Token,
		OwnerID:   model.OwnerID,
		PacketID:  model.PacketID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMToken(token *domain.SellerToken) *models.SellerTokenModel {
	return &models.SellerTokenModel{
		ID:        token.ID,
		Token:     token.Token,
		OwnerID:   token.OwnerID,
		PacketID:  token.PacketID,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}

func ToDomainIssue(model *models.SellerIssueModel) *domain.Issue {
	return &domain.Issue{
		ID:          model.ID,
		OwnerID:     model.OwnerID,
		PacketID:    model.PacketID,
		GroupID:     model.GroupID,
		INNNorm:     model.INNNorm,
		RawSupplier: model.RawSupplier,
		Comment:     model.Comment,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMIssue(issue *domain.Issue) *models.SellerIssueModel {
	return &models.SellerIssueModel{
		ID:          issue.ID,
		OwnerID:     issue.OwnerID,
		PacketID:    issue.PacketID,
		GroupID:     issue.GroupID,
		INNNorm:     issue.INNNorm,
		RawSupplier: issue.RawSupplier,
		Comment:     issue.Comment,
		CreatedAt:   issue.CreatedAt,
	}
}

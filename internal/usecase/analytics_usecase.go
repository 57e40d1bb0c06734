package usecase

import (
	"time"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

type AnalyticsUsecase interface {
	ApprovedMappings(from, to *time.Time) ([]*domain.SupplierMapping, error)
	ApprovedByPacket(ownerID, packetID string) ([]*domain.SupplierMapping, error)
}

type DefaultAnalyticsUsecase struct {
	mappingRepo domain.MappingRepository
}

func NewDefaultAnalyticsUsecase(mappingRepo domain.MappingRepository) *DefaultAnalyticsUsecase {
	return &DefaultAnalyticsUsecase{mappingRepo: mappingRepo}
}

func (uc *DefaultAnalyticsUsecase) ApprovedMappings(from, to *time.Time) ([]*domain.SupplierMapping, error) {
	return uc.mappingRepo.ListApproved(domain.ApprovedMappingsFilter{From: from, To: to})
}

func (uc *DefaultAnalyticsUsecase) ApprovedByPacket(ownerID, packetID string) ([]*domain.SupplierMapping, error) {
	return uc.mappingRepo.ListApproved(domain.ApprovedMappingsFilter{
		OwnerID:  &ownerID,
		PacketID: &packetID,
	})
}

package usecase

import "github.com/pricelink/supplier-mapping-service/internal/domain"

// PendingQueue lists mappings awaiting moderation, oldest first. Superseded
// PENDING rows never appear: only a group's latest mapping is actionable.
func (uc *DefaultMappingUsecase) PendingQueue() ([]*domain.SupplierMapping, error) {
	pending, err := uc.mappingRepo.ListPending()
	if err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.PendingQueueSize.WithLabelValues().Set(float64(len(pending)))
	}
	return pending, nil
}

// SellerGroups is the seller-facing listing: every group in the token's scope
// with its derived status.
func (uc *DefaultMappingUsecase) SellerGroups(token string) ([]*domain.GroupStatusView, error) {
	sellerToken, err := uc.tokenUc.Resolve(token)
	if err != nil {
		return nil, err
	}
	return uc.groupRepo.ListGroupsByScope(sellerToken.OwnerID, sellerToken.PacketID)
}

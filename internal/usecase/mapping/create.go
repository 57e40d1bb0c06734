package usecase

import (
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	mappingdto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/mapping"
)

// CreateMapping validates the seller's scope and opens a new PENDING request.
// Creation is always allowed: a new request supersedes any earlier PENDING one
// and may follow an APPROVED or REJECTED decision (re-request). Only decisions
// are guarded by state.
func (uc *DefaultMappingUsecase) CreateMapping(input *mappingdto.CreateMappingInput) (*domain.SupplierMapping, error) {
	sellerToken, err := uc.tokenUc.Resolve(input.Token)
	if err != nil {
		return nil, err
	}

	group, err := uc.groupRepo.GetGroupByID(input.GroupID)
	if err != nil {
		return nil, err
	}
	// A group outside the token's scope must be indistinguishable from a
	// missing one.
	if group.OwnerID != sellerToken.OwnerID || group.PacketID != sellerToken.PacketID {
		return nil, domain.ErrGroupNotFound
	}

	supplier, err := uc.supplierRepo.GetSupplierByID(input.CanonicalSupplierID)
	if err != nil {
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	mapping := &domain.SupplierMapping{
		ID:                  idGenerator(),
		GroupID:             group.ID,
		CanonicalSupplierID: supplier.ID,
		OwnerID:             group.OwnerID,
		PacketID:            group.PacketID,
		Status:              domain.MappingPending,
		RawSupplier:         group.RawSupplier,
		INNNorm:             group.INNNorm,
		CreatedAt:           time.Now().UTC(),
	}
	if err := uc.mappingRepo.CreateMapping(mapping); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.MappingsCreatedTotal.WithLabelValues(mapping.OwnerID, mapping.PacketID).Inc()
	}
	return mapping, nil
}

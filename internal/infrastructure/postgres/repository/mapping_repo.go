package repository

import (
	"errors"

	"github.com/jaevor/go-nanoid"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/mappers"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultMappingRepository struct {
	db *gorm.DB
}

func NewDefaultMappingRepository(db *gorm.DB) *DefaultMappingRepository {
	return &DefaultMappingRepository{db: db}
}

// CreateMapping inserts the mapping and repoints the group's latest_mapping_id
// inside one transaction. The group row is locked first, so two concurrent
// requests on the same group serialize and exactly one ends up latest.
func (r *DefaultMappingRepository) CreateMapping(mapping *domain.SupplierMapping) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var groupModel models.SupplierGroupModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&groupModel, "id = ?", mapping.GroupID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroupNotFound
		}
		if err != nil {
			return err
		}

		mappingModel := mappers.ToGORMMapping(mapping)
		if err := tx.Create(mappingModel).Error; err != nil {
			return err
		}
		mapping.Seq = mappingModel.Seq

		return tx.Model(&models.SupplierGroupModel{}).
			Where("id = ?", groupModel.ID).
			Update("latest_mapping_id", mappingModel.ID).Error
	})
}

// DecideMapping applies one admin decision atomically: the mapping row is
// locked and re-checked for PENDING, the group pointer is re-checked for
// staleness, then the status flip and the ledger event land in the same
// transaction. Two concurrent decisions on one mapping cannot both succeed,
// and a decision can never double-append an event.
func (r *DefaultMappingRepository) DecideMapping(decision *domain.MappingDecision) (*domain.SupplierMapping, *domain.ModerationEvent, error) {
	var decided *domain.SupplierMapping
	var event *domain.ModerationEvent

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var mappingModel models.SupplierMappingModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&mappingModel, "id = ?", decision.MappingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotPending
		}
		if err != nil {
			return err
		}
		if mappingModel.Status != string(domain.MappingPending) {
			return domain.ErrNotPending
		}

		var groupModel models.SupplierGroupModel
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&groupModel, "id = ?", mappingModel.GroupID).Error
		if err != nil {
			return err
		}
		if groupModel.LatestMappingID == nil || *groupModel.LatestMappingID != mappingModel.ID {
			return domain.ErrStaleMapping
		}

		// Snapshot the canonical side now: the registry entry may be edited or
		// deleted later and the ledger must stay readable.
		var supplierModel models.SupplierModel
		canonicalName, canonicalINN, canonicalCity := "", "", ""
		err = tx.First(&supplierModel, "id = ?", mappingModel.CanonicalSupplierID).Error
		if err == nil {
			canonicalName = supplierModel.Name
			canonicalINN = supplierModel.INN
			canonicalCity = supplierModel.City
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		decidedAt := decision.DecidedAt
		updates := map[string]interface{}{
			"status":     string(decision.Decision),
			"decided_at": decidedAt,
			"decided_by": decision.DecidedBy,
		}
		if decision.Decision == domain.DecisionRejected {
			updates["reject_reason_code"] = decision.ReasonCode
			updates["reject_reason_label"] = decision.ReasonLabel
			updates["comment_internal"] = decision.CommentInternal
		}
		if err := tx.Model(&models.SupplierMappingModel{}).
			Where("id = ?", mappingModel.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		idGenerator, err := nanoid.Standard(15)
		if err != nil {
			return err
		}
		eventModel := models.ModerationEventModel{
			ID:                    idGenerator(),
			OwnerID:               mappingModel.OwnerID,
			PacketID:              mappingModel.PacketID,
			GroupID:               mappingModel.GroupID,
			MappingID:             mappingModel.ID,
			Decision:              string(decision.Decision),
			DecidedAt:             decidedAt,
			DecidedBy:             decision.DecidedBy,
			RejectReasonCode:      decision.ReasonCode,
			RejectReasonLabel:     decision.ReasonLabel,
			RejectCommentInternal: decision.CommentInternal,
			RawSupplier:           groupModel.RawSupplier,
			INNNorm:               groupModel.INNNorm,
			CanonicalSupplier:     canonicalName,
			CanonicalINN:          canonicalINN,
			CanonicalCity:         canonicalCity,
		}
		if err := tx.Create(&eventModel).Error; err != nil {
			return err
		}

		mappingModel.Status = string(decision.Decision)
		mappingModel.DecidedAt = &decidedAt
		mappingModel.DecidedBy = decision.DecidedBy
		if decision.Decision == domain.DecisionRejected {
			mappingModel.RejectReasonCode = decision.ReasonCode
			mappingModel.RejectReasonLabel = decision.ReasonLabel
			mappingModel.CommentInternal = decision.CommentInternal
		}
		decided = mappers.ToDomainMapping(&mappingModel)
		event = mappers.ToDomainModerationEvent(&eventModel)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return decided, event, nil
}

// ListPending returns mappings that are PENDING and still their group's
// latest, oldest first. Superseded pending rows are filtered out by joining
// on the group pointer.
func (r *DefaultMappingRepository) ListPending() ([]*domain.SupplierMapping, error) {
	var mappingModels []models.SupplierMappingModel
	if err := r.db.
		Joins("JOIN supplier_group_models ON supplier_group_models.latest_mapping_id = supplier_mapping_models.id").
		Where("supplier_mapping_models.status = ?", string(domain.MappingPending)).
		Order("supplier_mapping_models.created_at asc, supplier_mapping_models.seq asc").
		Find(&mappingModels).Error; err != nil {
		return nil, err
	}
	return r.withCanonicalSuppliers(mappingModels)
}

func (r *DefaultMappingRepository) ListApproved(filter domain.ApprovedMappingsFilter) ([]*domain.SupplierMapping, error) {
	query := r.db.Model(&models.SupplierMappingModel{}).
		Where("status = ?", string(domain.MappingApproved))
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.PacketID != nil {
		query = query.Where("packet_id = ?", *filter.PacketID)
	}
	if filter.From != nil {
		query = query.Where("decided_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("decided_at <= ?", *filter.To)
	}

	var mappingModels []models.SupplierMappingModel
	if err := query.Order("decided_at asc").Find(&mappingModels).Error; err != nil {
		return nil, err
	}
	return r.withCanonicalSuppliers(mappingModels)
}

func (r *DefaultMappingRepository) withCanonicalSuppliers(mappingModels []models.SupplierMappingModel) ([]*domain.SupplierMapping, error) {
	supplierIDs := make([]string, 0, len(mappingModels))
	for i := range mappingModels {
		supplierIDs = append(supplierIDs, mappingModels[i].CanonicalSupplierID)
	}
	supplierByID := make(map[string]*domain.Supplier, len(supplierIDs))
	if len(supplierIDs) > 0 {
		var supplierModels []models.SupplierModel
		if err := r.db.Where("id IN ?", supplierIDs).Find(&supplierModels).Error; err != nil {
			return nil, err
		}
		for i := range supplierModels {
			supplierByID[supplierModels[i].ID] = mappers.ToDomainSupplier(&supplierModels[i])
		}
	}

	mappings := make([]*domain.SupplierMapping, len(mappingModels))
	for i := range mappingModels {
		mappings[i] = mappers.ToDomainMapping(&mappingModels[i])
		mappings[i].CanonicalSupplier = supplierByID[mappingModels[i].CanonicalSupplierID]
	}
	return mappings, nil
}

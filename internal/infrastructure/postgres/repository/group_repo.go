package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/mappers"
	"github.com/pricelink/supplier-mapping-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultGroupRepository struct {
	db *gorm.DB
}

func NewDefaultGroupRepository(db *gorm.DB) *DefaultGroupRepository {
	return &DefaultGroupRepository{db: db}
}

// groupLockKey serializes concurrent imports of one group key. The row lock
// alone is not enough: when the group does not exist yet there is no row to
// lock, and the unique index misses NULL inn_norm duplicates because Postgres
// treats NULLs as distinct. The advisory lock covers that first-insert race.
// Absent INN is folded to a marker byte so it cannot collide with a real
// empty-string value.
func groupLockKey(item *domain.PriceItem) string {
	inn := "\x00"
	if item.INNNorm != nil {
		inn = *item.INNNorm
	}
	return strings.Join([]string{item.OwnerID, item.PacketID, inn, item.RawSupplier}, "\x1f")
}

// IngestPriceItem stores the row and folds it into its group under a per-key
// advisory lock plus a row lock, so two concurrent imports of the same key
// cannot create two groups or lose an increment.
func (r *DefaultGroupRepository) IngestPriceItem(item *domain.PriceItem) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtextextended(?, 0))",
			groupLockKey(item),
		).Error; err != nil {
			return err
		}

		if err := tx.Create(mappers.ToGORMPriceItem(item)).Error; err != nil {
			return err
		}

		var groupModel models.SupplierGroupModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND packet_id = ? AND raw_supplier = ?", item.OwnerID, item.PacketID, item.RawSupplier).
			Where("inn_norm IS NOT DISTINCT FROM ?", item.INNNorm).
			First(&groupModel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			idGenerator, err := nanoid.Standard(15)
			if err != nil {
				return err
			}
			now := time.Now().UTC()
			groupModel = models.SupplierGroupModel{
				ID:          idGenerator(),
				OwnerID:     item.OwnerID,
				PacketID:    item.PacketID,
				INNNorm:     item.INNNorm,
				RawSupplier: item.RawSupplier,
				ItemsCount:  1,
				INNInvalid:  item.INNInvalid,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			created = true
			return tx.Create(&groupModel).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&groupModel).Updates(map[string]interface{}{
			"items_count": gorm.Expr("items_count + 1"),
			"inn_invalid": item.INNInvalid,
			"updated_at":  time.Now().UTC(),
		}).Error
	})
	return created, err
}

func (r *DefaultGroupRepository) GetGroupByID(groupID string) (*domain.SupplierGroup, error) {
	var groupModel models.SupplierGroupModel
	if err := r.db.First(&groupModel, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}
	return mappers.ToDomainGroup(&groupModel), nil
}

func (r *DefaultGroupRepository) ListGroupsByScope(ownerID, packetID string) ([]*domain.GroupStatusView, error) {
	var groupModels []models.SupplierGroupModel
	if err := r.db.
		Where("owner_id = ? AND packet_id = ?", ownerID, packetID).
		Order("raw_supplier asc").
		Find(&groupModels).Error; err != nil {
		return nil, err
	}

	mappingIDs := make([]string, 0, len(groupModels))
	for _, groupModel := range groupModels {
		if groupModel.LatestMappingID != nil {
			mappingIDs = append(mappingIDs, *groupModel.LatestMappingID)
		}
	}

	mappingByID := make(map[string]*models.SupplierMappingModel, len(mappingIDs))
	supplierByID := make(map[string]*models.SupplierModel)
	if len(mappingIDs) > 0 {
		var mappingModels []models.SupplierMappingModel
		if err := r.db.Where("id IN ?", mappingIDs).Find(&mappingModels).Error; err != nil {
			return nil, err
		}
		supplierIDs := make([]string, 0, len(mappingModels))
		for i := range mappingModels {
			mappingByID[mappingModels[i].ID] = &mappingModels[i]
			supplierIDs = append(supplierIDs, mappingModels[i].CanonicalSupplierID)
		}
		var supplierModels []models.SupplierModel
		if err := r.db.Where("id IN ?", supplierIDs).Find(&supplierModels).Error; err != nil {
			return nil, err
		}
		for i := range supplierModels {
			supplierByID[supplierModels[i].ID] = &supplierModels[i]
		}
	}

	views := make([]*domain.GroupStatusView, 0, len(groupModels))
	for i := range groupModels {
		view := &domain.GroupStatusView{
			Group:  *mappers.ToDomainGroup(&groupModels[i]),
			Status: domain.GroupUnmapped,
		}
		if groupModels[i].LatestMappingID != nil {
			if mappingModel, ok := mappingByID[*groupModels[i].LatestMappingID]; ok {
				view.Status = domain.GroupStatus(mappingModel.Status)
				view.CanonicalSupplierID = &mappingModel.CanonicalSupplierID
				if supplierModel, ok := supplierByID[mappingModel.CanonicalSupplierID]; ok {
					view.CanonicalSupplier = &supplierModel.Name
				}
				if mappingModel.DecidedAt != nil {
					view.LatestDecisionAt = mappingModel.DecidedAt
				} else {
					createdAt := mappingModel.CreatedAt
					view.LatestDecisionAt = &createdAt
				}
				if mappingModel.Status == string(domain.MappingRejected) && mappingModel.RejectReasonLabel != "" {
					label := mappingModel.RejectReasonLabel
					view.RejectReasonLabel = &label
				}
			}
		}
		views = append(views, view)
	}
	return views, nil
}

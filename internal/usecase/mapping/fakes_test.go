package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

// In-memory repositories mirroring the transactional guards of the real ones:
// decisions only on the group-latest PENDING mapping, ledger append per
// decision, group pointer repointed on every insert.

type fakeGroupRepo struct {
	groups map[string]*domain.SupplierGroup
	// mappings is shared with fakeMappingRepo so list views can derive status.
	mappings map[string]*domain.SupplierMapping
	// suppliers lets ListGroupsByScope resolve canonical names.
	suppliers map[string]*domain.Supplier
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:    make(map[string]*domain.SupplierGroup),
		mappings:  make(map[string]*domain.SupplierMapping),
		suppliers: make(map[string]*domain.Supplier),
	}
}

func (f *fakeGroupRepo) IngestPriceItem(item *domain.PriceItem) (bool, error) {
	for _, group := range f.groups {
		if group.OwnerID == item.OwnerID && group.PacketID == item.PacketID &&
			group.RawSupplier == item.RawSupplier && equalINN(group.INNNorm, item.INNNorm) {
			group.ItemsCount++
			group.UpdatedAt = item.CreatedAt
			return false, nil
		}
	}
	id := fmt.Sprintf("group-%d", len(f.groups)+1)
	f.groups[id] = &domain.SupplierGroup{
		ID:          id,
		OwnerID:     item.OwnerID,
		PacketID:    item.PacketID,
		INNNorm:     item.INNNorm,
		RawSupplier: item.RawSupplier,
		ItemsCount:  1,
		INNInvalid:  item.INNInvalid,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.CreatedAt,
	}
	return true, nil
}

func (f *fakeGroupRepo) GetGroupByID(groupID string) (*domain.SupplierGroup, error) {
	group, ok := f.groups[groupID]
	if !ok {
		return nil, domain.ErrGroupNotFound
	}
	copied := *group
	return &copied, nil
}

func (f *fakeGroupRepo) ListGroupsByScope(ownerID, packetID string) ([]*domain.GroupStatusView, error) {
	var views []*domain.GroupStatusView
	for _, group := range f.groups {
		if group.OwnerID != ownerID || group.PacketID != packetID {
			continue
		}
		view := &domain.GroupStatusView{Group: *group, Status: domain.GroupUnmapped}
		if group.LatestMappingID != nil {
			mapping := f.mappings[*group.LatestMappingID]
			view.Status = domain.GroupStatus(mapping.Status)
			view.LatestDecisionAt = mapping.DecidedAt
			if mapping.Status == domain.MappingApproved {
				view.CanonicalSupplierID = &mapping.CanonicalSupplierID
				if supplier, ok := f.suppliers[mapping.CanonicalSupplierID]; ok {
					view.CanonicalSupplier = &supplier.Name
				}
			}
			if mapping.Status == domain.MappingRejected {
				label := mapping.RejectReasonLabel
				view.RejectReasonLabel = &label
			}
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Group.ID < views[j].Group.ID })
	return views, nil
}

func equalINN(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type fakeMappingRepo struct {
	groups *fakeGroupRepo
	events []*domain.ModerationEvent
	seq    int64
}

func newFakeMappingRepo(groups *fakeGroupRepo) *fakeMappingRepo {
	return &fakeMappingRepo{groups: groups}
}

func (f *fakeMappingRepo) CreateMapping(mapping *domain.SupplierMapping) error {
	group, ok := f.groups.groups[mapping.GroupID]
	if !ok {
		return domain.ErrGroupNotFound
	}
	f.seq++
	mapping.Seq = f.seq
	stored := *mapping
	f.groups.mappings[mapping.ID] = &stored
	group.LatestMappingID = &stored.ID
	return nil
}

func (f *fakeMappingRepo) DecideMapping(decision *domain.MappingDecision) (*domain.SupplierMapping, *domain.ModerationEvent, error) {
	mapping, ok := f.groups.mappings[decision.MappingID]
	if !ok {
		return nil, nil, domain.ErrNotPending
	}
	if mapping.Status != domain.MappingPending {
		return nil, nil, domain.ErrNotPending
	}
	group := f.groups.groups[mapping.GroupID]
	if group.LatestMappingID == nil || *group.LatestMappingID != mapping.ID {
		return nil, nil, domain.ErrStaleMapping
	}

	mapping.Status = domain.MappingApproved
	if decision.Decision == domain.DecisionRejected {
		mapping.Status = domain.MappingRejected
		mapping.RejectReasonCode = decision.ReasonCode
		mapping.RejectReasonLabel = decision.ReasonLabel
		mapping.CommentInternal = decision.CommentInternal
	}
	decidedAt := decision.DecidedAt
	mapping.DecidedAt = &decidedAt
	mapping.DecidedBy = decision.DecidedBy

	event := &domain.ModerationEvent{
		ID:                    fmt.Sprintf("event-%d", len(f.events)+1),
		OwnerID:               mapping.OwnerID,
		PacketID:              mapping.PacketID,
		GroupID:               mapping.GroupID,
		MappingID:             mapping.ID,
		Decision:              decision.Decision,
		DecidedAt:             decidedAt,
		DecidedBy:             decision.DecidedBy,
		RejectReasonCode:      decision.ReasonCode,
		RejectReasonLabel:     decision.ReasonLabel,
		RejectCommentInternal: decision.CommentInternal,
		RawSupplier:           mapping.RawSupplier,
		INNNorm:               mapping.INNNorm,
	}
	f.events = append(f.events, event)

	copied := *mapping
	return &copied, event, nil
}

func (f *fakeMappingRepo) ListPending() ([]*domain.SupplierMapping, error) {
	var pending []*domain.SupplierMapping
	for _, group := range f.groups.groups {
		if group.LatestMappingID == nil {
			continue
		}
		mapping := f.groups.mappings[*group.LatestMappingID]
		if mapping.Status == domain.MappingPending {
			copied := *mapping
			pending = append(pending, &copied)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].CreatedAt.Equal(pending[j].CreatedAt) {
			return pending[i].Seq < pending[j].Seq
		}
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}

func (f *fakeMappingRepo) ListApproved(filter domain.ApprovedMappingsFilter) ([]*domain.SupplierMapping, error) {
	var approved []*domain.SupplierMapping
	for _, mapping := range f.groups.mappings {
		if mapping.Status != domain.MappingApproved {
			continue
		}
		if filter.OwnerID != nil && mapping.OwnerID != *filter.OwnerID {
			continue
		}
		if filter.PacketID != nil && mapping.PacketID != *filter.PacketID {
			continue
		}
		if filter.From != nil && mapping.DecidedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && mapping.DecidedAt.After(*filter.To) {
			continue
		}
		copied := *mapping
		approved = append(approved, &copied)
	}
	return approved, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*domain.Supplier
}

func (f *fakeSupplierRepo) CreateSupplier(supplier *domain.Supplier) error {
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepo) UpdateSupplier(supplier *domain.Supplier) error {
	if _, ok := f.suppliers[supplier.ID]; !ok {
		return domain.ErrSupplierNotFound
	}
	f.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSupplierRepo) DeleteSupplier(supplierID string) error {
	if _, ok := f.suppliers[supplierID]; !ok {
		return domain.ErrSupplierNotFound
	}
	delete(f.suppliers, supplierID)
	return nil
}

func (f *fakeSupplierRepo) GetSupplierByID(supplierID string) (*domain.Supplier, error) {
	supplier, ok := f.suppliers[supplierID]
	if !ok {
		return nil, domain.ErrSupplierNotFound
	}
	return supplier, nil
}

func (f *fakeSupplierRepo) SearchSuppliers(q string) ([]*domain.Supplier, error) {
	var out []*domain.Supplier
	for _, supplier := range f.suppliers {
		out = append(out, supplier)
	}
	return out, nil
}

type fakeTokenUsecase struct {
	tokens map[string]*domain.SellerToken
}

func (f *fakeTokenUsecase) Resolve(token string) (*domain.SellerToken, error) {
	sellerToken, ok := f.tokens[token]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return sellerToken, nil
}

// fixture wires one token scope, one group and one registry supplier.
type fixture struct {
	groupRepo    *fakeGroupRepo
	mappingRepo  *fakeMappingRepo
	supplierRepo *fakeSupplierRepo
	uc           *DefaultMappingUsecase
}

func newFixture() *fixture {
	groupRepo := newFakeGroupRepo()
	mappingRepo := newFakeMappingRepo(groupRepo)
	supplierRepo := &fakeSupplierRepo{suppliers: groupRepo.suppliers}

	inn := "7707083893"
	groupRepo.groups["group-1"] = &domain.SupplierGroup{
		ID:          "group-1",
		OwnerID:     "owner-1",
		PacketID:    "packet-1",
		INNNorm:     &inn,
		RawSupplier: "Росско",
		ItemsCount:  3,
		CreatedAt:   time.Now().UTC(),
	}
	supplierRepo.suppliers["supplier-1"] = &domain.Supplier{
		ID:   "supplier-1",
		Name: "ООО «Росско»",
		INN:  "7707083893",
	}

	tokenUc := &fakeTokenUsecase{tokens: map[string]*domain.SellerToken{
		"token-1": {ID: "t1", Token: "token-1", OwnerID: "owner-1", PacketID: "packet-1"},
		"token-2": {ID: "t2", Token: "token-2", OwnerID: "owner-2", PacketID: "packet-2"},
	}}

	return &fixture{
		groupRepo:    groupRepo,
		mappingRepo:  mappingRepo,
		supplierRepo: supplierRepo,
		uc:           NewDefaultMappingUsecase(mappingRepo, groupRepo, supplierRepo, tokenUc, nil, nil),
	}
}

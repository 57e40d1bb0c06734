package usecase

import (
	"fmt"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

type memoryGroupRepo struct {
	groups []*domain.SupplierGroup
	items  int
}

func (m *memoryGroupRepo) IngestPriceItem(item *domain.PriceItem) (bool, error) {
	m.items++
	for _, group := range m.groups {
		if group.OwnerID == item.OwnerID && group.PacketID == item.PacketID &&
			group.RawSupplier == item.RawSupplier && equalStringPtr(group.INNNorm, item.INNNorm) {
			group.ItemsCount++
			return false, nil
		}
	}
	m.groups = append(m.groups, &domain.SupplierGroup{
		ID:          fmt.Sprintf("group-%d", len(m.groups)+1),
		OwnerID:     item.OwnerID,
		PacketID:    item.PacketID,
		INNNorm:     item.INNNorm,
		RawSupplier: item.RawSupplier,
		ItemsCount:  1,
		INNInvalid:  item.INNInvalid,
		CreatedAt:   item.CreatedAt,
	})
	return true, nil
}

func (m *memoryGroupRepo) GetGroupByID(groupID string) (*domain.SupplierGroup, error) {
	for _, group := range m.groups {
		if group.ID == groupID {
			return group, nil
		}
	}
	return nil, domain.ErrGroupNotFound
}

func (m *memoryGroupRepo) ListGroupsByScope(ownerID, packetID string) ([]*domain.GroupStatusView, error) {
	var views []*domain.GroupStatusView
	for _, group := range m.groups {
		if group.OwnerID == ownerID && group.PacketID == packetID {
			views = append(views, &domain.GroupStatusView{Group: *group, Status: domain.GroupUnmapped})
		}
	}
	return views, nil
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type memoryTokenRepo struct {
	tokens map[string]*domain.SellerToken
}

func (m *memoryTokenRepo) GetByToken(token string) (*domain.SellerToken, error) {
	sellerToken, ok := m.tokens[token]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return sellerToken, nil
}

func (m *memoryTokenRepo) CreateToken(token *domain.SellerToken) error {
	m.tokens[token.Token] = token
	return nil
}

type memoryIssueRepo struct {
	issues []*domain.Issue
}

func (m *memoryIssueRepo) CreateIssue(issue *domain.Issue) error {
	m.issues = append(m.issues, issue)
	return nil
}

func (m *memoryIssueRepo) ListIssues() ([]*domain.Issue, error) {
	return m.issues, nil
}

type memorySupplierRepo struct {
	suppliers map[string]*domain.Supplier
}

func (m *memorySupplierRepo) CreateSupplier(supplier *domain.Supplier) error {
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *memorySupplierRepo) UpdateSupplier(supplier *domain.Supplier) error {
	if _, ok := m.suppliers[supplier.ID]; !ok {
		return domain.ErrSupplierNotFound
	}
	m.suppliers[supplier.ID] = supplier
	return nil
}

func (m *memorySupplierRepo) DeleteSupplier(supplierID string) error {
	if _, ok := m.suppliers[supplierID]; !ok {
		return domain.ErrSupplierNotFound
	}
	delete(m.suppliers, supplierID)
	return nil
}

func (m *memorySupplierRepo) GetSupplierByID(supplierID string) (*domain.Supplier, error) {
	supplier, ok := m.suppliers[supplierID]
	if !ok {
		return nil, domain.ErrSupplierNotFound
	}
	return supplier, nil
}

func (m *memorySupplierRepo) SearchSuppliers(q string) ([]*domain.Supplier, error) {
	var out []*domain.Supplier
	for _, supplier := range m.suppliers {
		out = append(out, supplier)
	}
	return out, nil
}

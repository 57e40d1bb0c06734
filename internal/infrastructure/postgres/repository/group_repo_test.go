package repository

import (
	"testing"

	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

func TestGroupLockKey(t *testing.T) {
	inn := "7707083893"
	empty := ""
	base := &domain.PriceItem{OwnerID: "o1", PacketID: "p1", INNNorm: &inn, RawSupplier: "Росско"}

	if groupLockKey(base) != groupLockKey(base) {
		t.Error("lock key not deterministic for one item")
	}
	same := &domain.PriceItem{OwnerID: "o1", PacketID: "p1", INNNorm: &inn, RawSupplier: "Росско"}
	if groupLockKey(base) != groupLockKey(same) {
		t.Error("identical group keys produced different lock keys")
	}

	tests := []struct {
		name  string
		other *domain.PriceItem
	}{
		{"different owner", &domain.PriceItem{OwnerID: "o2", PacketID: "p1", INNNorm: &inn, RawSupplier: "Росско"}},
		{"different packet", &domain.PriceItem{OwnerID: "o1", PacketID: "p2", INNNorm: &inn, RawSupplier: "Росско"}},
		{"different supplier", &domain.PriceItem{OwnerID: "o1", PacketID: "p1", INNNorm: &inn, RawSupplier: "БЕРГ"}},
		{"absent inn", &domain.PriceItem{OwnerID: "o1", PacketID: "p1", INNNorm: nil, RawSupplier: "Росско"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if groupLockKey(base) == groupLockKey(tt.other) {
				t.Errorf("distinct group keys share a lock key")
			}
		})
	}

	// Two absent-INN imports of one key must serialize on the same lock, and
	// absent must not alias a real empty-string INN.
	absentA := &domain.PriceItem{OwnerID: "o1", PacketID: "p1", INNNorm: nil, RawSupplier: "Росско"}
	absentB := &domain.PriceItem{OwnerID: "o1", PacketID: "p1", INNNorm: nil, RawSupplier: "Росско"}
	if groupLockKey(absentA) != groupLockKey(absentB) {
		t.Error("absent-INN imports of one key map to different locks")
	}
	emptyINN := &domain.PriceItem{OwnerID: "o1", PacketID: "p1", INNNorm: &empty, RawSupplier: "Росско"}
	if groupLockKey(absentA) == groupLockKey(emptyINN) {
		t.Error("absent INN aliases empty-string INN")
	}
}

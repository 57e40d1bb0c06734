package usecase

import (
	"fmt"
	"testing"

	pricedto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/price"
)

func TestImportAggregatesByGroupKey(t *testing.T) {
	groupRepo := &memoryGroupRepo{}
	uc := NewDefaultImportUsecase(groupRepo, nil)

	var rows []pricedto.PriceItemInput
	for i := 0; i < 100; i++ {
		rows = append(rows, pricedto.PriceItemInput{
			OwnerID:     "owner-1",
			PacketID:    "packet-1",
			RawINN:      "7707083893",
			RawSupplier: "Росско",
			ItemID:      fmt.Sprintf("item-a-%d", i),
		})
	}
	for i := 0; i < 50; i++ {
		rows = append(rows, pricedto.PriceItemInput{
			OwnerID:     "owner-1",
			PacketID:    "packet-1",
			RawINN:      "500100732259",
			RawSupplier: "БЕРГ",
			ItemID:      fmt.Sprintf("item-b-%d", i),
		})
	}

	result, err := uc.ImportItems(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ItemsIngested != 150 {
		t.Errorf("items ingested = %d, want 150", result.ItemsIngested)
	}
	if result.GroupsCreated != 2 {
		t.Errorf("groups created = %d, want 2", result.GroupsCreated)
	}
	if result.GroupsUpdated != 148 {
		t.Errorf("groups updated = %d, want 148", result.GroupsUpdated)
	}

	if len(groupRepo.groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groupRepo.groups))
	}
	counts := map[string]int64{}
	for _, group := range groupRepo.groups {
		counts[group.RawSupplier] = group.ItemsCount
	}
	if counts["Росско"] != 100 || counts["БЕРГ"] != 50 {
		t.Errorf("item counts = %v, want Росско:100 БЕРГ:50", counts)
	}
}

func TestImportIsIdempotentOnGroupLevel(t *testing.T) {
	groupRepo := &memoryGroupRepo{}
	uc := NewDefaultImportUsecase(groupRepo, nil)

	row := pricedto.PriceItemInput{
		OwnerID:     "owner-1",
		PacketID:    "packet-1",
		RawINN:      "7707083893",
		RawSupplier: "Росско",
		ItemID:      "item-1",
	}

	// The same row imported twice lands in one group with items_count 2.
	if _, err := uc.ImportItems([]pricedto.PriceItemInput{row}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	result, err := uc.ImportItems([]pricedto.PriceItemInput{row})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if result.GroupsCreated != 0 || result.GroupsUpdated != 1 {
		t.Errorf("second import = %+v, want created=0 updated=1", result)
	}
	if len(groupRepo.groups) != 1 || groupRepo.groups[0].ItemsCount != 2 {
		t.Errorf("groups = %d count = %d, want 1 group with count 2",
			len(groupRepo.groups), groupRepo.groups[0].ItemsCount)
	}
}

func TestImportSeparatesScopesAndMissingINN(t *testing.T) {
	groupRepo := &memoryGroupRepo{}
	uc := NewDefaultImportUsecase(groupRepo, nil)

	rows := []pricedto.PriceItemInput{
		{OwnerID: "owner-1", PacketID: "packet-1", RawINN: "7707083893", RawSupplier: "Росско", ItemID: "a"},
		{OwnerID: "owner-2", PacketID: "packet-2", RawINN: "7707083893", RawSupplier: "Росско", ItemID: "b"},
		{OwnerID: "owner-1", PacketID: "packet-1", RawINN: "", RawSupplier: "Росско", ItemID: "c"},
	}

	result, err := uc.ImportItems(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GroupsCreated != 3 {
		t.Errorf("groups created = %d, want 3 (scope and INN are part of the key)", result.GroupsCreated)
	}

	for _, group := range groupRepo.groups {
		if group.INNNorm == nil && group.INNInvalid {
			t.Errorf("missing INN marked invalid, want invalid=false")
		}
	}
}

func TestImportFlagsChecksumFailures(t *testing.T) {
	groupRepo := &memoryGroupRepo{}
	uc := NewDefaultImportUsecase(groupRepo, nil)

	_, err := uc.ImportItems([]pricedto.PriceItemInput{
		{OwnerID: "owner-1", PacketID: "packet-1", RawINN: "7707083894", RawSupplier: "Росско", ItemID: "a"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	group := groupRepo.groups[0]
	if !group.INNInvalid {
		t.Error("checksum-failing INN not flagged invalid")
	}
	if group.INNNorm == nil || *group.INNNorm != "7707083894" {
		t.Errorf("inn_norm = %v, want the digits retained for moderator review", group.INNNorm)
	}
}

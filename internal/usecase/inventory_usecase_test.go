package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"hvac_service/internal/adapter/persistence/repository"
	"hvac_service/internal/domain/entities"
)

func TestInventoryUseCase_CheckStock(t *testing.T) {
	store := repository.NewMemoryUnitOfWork()
	store.PutInventoryItem(entities.InventoryItem{ID: 10, Brand: "Carrier", Model: "XPower", Stock: 2, Status: entities.InventoryStatusAvailable})
	uc := NewInventoryUseCase(store, fixedClock{now: approvalNow}, nil)

	t.Run("invalid input", func(t *testing.T) {
		if _, err := uc.CheckStock(context.Background(), 0, 1); !errors.Is(err, ErrInvalidInventoryItemID) {
			t.Fatalf("expected ErrInvalidInventoryItemID, got %v", err)
		}
		if _, err := uc.CheckStock(context.Background(), 10, 0); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("available", func(t *testing.T) {
		got, err := uc.CheckStock(context.Background(), 10, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Available || got.Item.Stock != 2 {
			t.Fatalf("unexpected availability: %+v", got)
		}
	})

	t.Run("short", func(t *testing.T) {
		got, err := uc.CheckStock(context.Background(), 10, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Available || got.Reason == "" {
			t.Fatalf("expected unavailable with reason, got %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := uc.CheckStock(context.Background(), 99, 1); !errors.Is(err, ErrInventoryItemNotFound) {
			t.Fatalf("expected ErrInventoryItemNotFound, got %v", err)
		}
	})
}

func TestInventoryUseCase_Restock(t *testing.T) {
	store := repository.NewMemoryUnitOfWork()
	store.PutInventoryItem(entities.InventoryItem{ID: 10, Stock: 0, Status: entities.InventoryStatusExhausted})
	uc := NewInventoryUseCase(store, fixedClock{now: approvalNow}, nil)

	got, err := uc.Restock(context.Background(), 10, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Stock != 4 || got.Status != entities.InventoryStatusAvailable || !got.UpdatedAt.Equal(approvalNow) {
		t.Fatalf("unexpected item: %+v", got)
	}
	if stored, _ := store.InventoryItem(10); stored.Stock != 4 || stored.IsExhausted() {
		t.Fatalf("unexpected stored item: %+v", stored)
	}

	if _, err := uc.Restock(context.Background(), 10, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := uc.Restock(context.Background(), 77, 1); !errors.Is(err, ErrInventoryItemNotFound) {
		t.Fatalf("expected ErrInventoryItemNotFound, got %v", err)
	}
}

func TestULIDSerialGenerator_NewSerial(t *testing.T) {
	g := NewULIDSerialGenerator(fixedClock{now: approvalNow})
	item := entities.InventoryItem{Brand: "Carrier", Model: "X Power", CapacityBTU: 12000}

	first := g.NewSerial(item, 1)
	second := g.NewSerial(item, 2)

	pattern := regexp.MustCompile(`^CARRIER-X_POWER-12000BTU-[0-9A-HJKMNP-TV-Z]{26}-00[12]$`)
	if !pattern.MatchString(first) || !pattern.MatchString(second) {
		t.Fatalf("unexpected serials %q %q", first, second)
	}
	if first[:len(first)-4] == second[:len(second)-4] {
		t.Fatalf("expected distinct ulids, got %q and %q", first, second)
	}
}

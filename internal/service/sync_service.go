package service

import (
	"context"
	"fmt"

	"markethub/internal/platform"
	"markethub/internal/repository"
)

// SyncService triggers an inventory sync with the external commerce
// platform. The call changes no local state; it only awaits the ack.
type SyncService interface {
	SyncInventory(ctx context.Context, storeID string) error
}

type syncService struct {
	stores repository.StoreRepository
	client platform.Client
}

// NewSyncService creates a new instance of SyncService.
func NewSyncService(stores repository.StoreRepository, client platform.Client) SyncService {
	return &syncService{stores: stores, client: client}
}

func (s *syncService) SyncInventory(ctx context.Context, storeID string) error {
	store, err := s.stores.FindStoreByID(ctx, storeID)
	if err != nil {
		return err
	}

	if err := s.client.SyncInventory(ctx, store.PlatformDomain); err != nil {
		return fmt.Errorf("inventory sync failed: %w", err)
	}
	return nil
}

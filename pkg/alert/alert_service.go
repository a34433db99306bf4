package alert

import (
	"context"
	"time"

	"github.com/freshkeep/freshkeep-backend/entities"
)

type (
	// InventorySource is the slice of the food repository the alert service
	// needs; it never mutates inventory.
	InventorySource interface {
		LoadInventory(ctx context.Context) ([]entities.FoodItem, error)
	}

	AlertService interface {
		// Unread recomputes the alert set from current inventory and filters
		// it against the persisted read IDs. Recomputation is total; nothing
		// is cached between calls, which keeps ordering deterministic.
		Unread(ctx context.Context) ([]entities.Alert, error)
		MarkRead(ctx context.Context, id string) error
		MarkAllRead(ctx context.Context) error
		// PruneItem drops an item's derived alert IDs from the read set once
		// the item itself is gone, so the set cannot grow without bound.
		PruneItem(ctx context.Context, itemID string) error
	}

	alertService struct {
		inventory InventorySource
		readRepo  ReadAlertRepository
		now       func() time.Time
	}
)

func NewAlertService(inventory InventorySource, readRepo ReadAlertRepository) AlertService {
	return &alertService{
		inventory: inventory,
		readRepo:  readRepo,
		now:       time.Now,
	}
}

func (s *alertService) Unread(ctx context.Context) ([]entities.Alert, error) {
	items, err := s.inventory.LoadInventory(ctx)
	if err != nil {
		return nil, err
	}

	readIDs, err := s.readRepo.LoadReadIDs(ctx)
	if err != nil {
		return nil, err
	}

	readSet := make(map[string]struct{}, len(readIDs))
	for _, id := range readIDs {
		readSet[id] = struct{}{}
	}

	return FilterUnread(Generate(items, s.now()), readSet), nil
}

func (s *alertService) MarkRead(ctx context.Context, id string) error {
	readIDs, err := s.readRepo.LoadReadIDs(ctx)
	if err != nil {
		return err
	}

	for _, existing := range readIDs {
		if existing == id {
			return nil
		}
	}

	return s.readRepo.SaveReadIDs(ctx, append(readIDs, id))
}

func (s *alertService) MarkAllRead(ctx context.Context) error {
	current, err := s.Unread(ctx)
	if err != nil {
		return err
	}
	if len(current) == 0 {
		return nil
	}

	readIDs, err := s.readRepo.LoadReadIDs(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(readIDs))
	for _, id := range readIDs {
		seen[id] = struct{}{}
	}
	for _, a := range current {
		if _, ok := seen[a.ID]; !ok {
			readIDs = append(readIDs, a.ID)
			seen[a.ID] = struct{}{}
		}
	}

	return s.readRepo.SaveReadIDs(ctx, readIDs)
}

func (s *alertService) PruneItem(ctx context.Context, itemID string) error {
	readIDs, err := s.readRepo.LoadReadIDs(ctx)
	if err != nil {
		return err
	}

	drop := make(map[string]struct{})
	for _, id := range IDsForItem(itemID) {
		drop[id] = struct{}{}
	}

	kept := readIDs[:0]
	changed := false
	for _, id := range readIDs {
		if _, ok := drop[id]; ok {
			changed = true
			continue
		}
		kept = append(kept, id)
	}

	if !changed {
		return nil
	}
	return s.readRepo.SaveReadIDs(ctx, kept)
}

package food

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/expiry"
)

const expiryDateLayout = "2006-01-02"

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, search, category string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		RequestDelete(ctx context.Context, id string) (domain.RequestDeleteResponse, error)
		ConfirmDelete(ctx context.Context, id string) error
		CancelDelete(ctx context.Context, id string) error
	}

	// TipSource supplies storage advice for a newly added item. Best-effort:
	// the service treats any failure as "no tip".
	TipSource interface {
		StorageTip(ctx context.Context, itemName string) (string, error)
	}

	// AlertPruner removes an item's derived alert IDs from the read set after
	// the item is permanently deleted.
	AlertPruner interface {
		PruneItem(ctx context.Context, itemID string) error
	}

	foodService struct {
		foodRepository FoodRepository
		tips           TipSource
		pruner         AlertPruner
		logger         *zap.Logger

		// pendingDeletion holds IDs whose removal has been requested but not
		// yet confirmed. In-memory only: a restart cancels pending deletions,
		// it never deletes anything.
		mu              sync.Mutex
		pendingDeletion map[string]struct{}

		now func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository, tips TipSource, pruner AlertPruner, logger *zap.Logger) FoodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &foodService{
		foodRepository:  foodRepository,
		tips:            tips,
		pruner:          pruner,
		logger:          logger,
		pendingDeletion: make(map[string]struct{}),
		now:             time.Now,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	expiryDate, err := time.Parse(expiryDateLayout, req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if !entities.ValidCategory(req.Category) {
		return domain.FoodItemResponse{}, domain.ErrInvalidCategory
	}

	item := entities.FoodItem{
		ID:         uuid.New(),
		Name:       req.Name,
		Category:   entities.Category(req.Category),
		Quantity:   req.Quantity,
		ExpiryDate: expiryDate,
		AddedDate:  s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.foodRepository.LoadInventory(ctx)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	items = append(items, item)
	if err := s.foodRepository.SaveInventory(ctx, items); err != nil {
		return domain.FoodItemResponse{}, err
	}

	if s.tips != nil {
		go s.fillStorageTip(item.ID)
	}

	return s.toResponse(item), nil
}

// fillStorageTip asks the collaborator for storage advice and attaches it to
// the item. Failure is silent; an item without a tip is a valid item.
func (s *foodService) fillStorageTip(itemID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := s.foodRepository.LoadInventory(ctx)
	if err != nil {
		return
	}

	var name string
	for _, item := range items {
		if item.ID == itemID {
			name = item.Name
			break
		}
	}
	if name == "" {
		return
	}

	tip, err := s.tips.StorageTip(ctx, name)
	if err != nil || tip == "" {
		s.logger.Debug("storage tip unavailable", zap.String("item", name), zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err = s.foodRepository.LoadInventory(ctx)
	if err != nil {
		return
	}
	for i := range items {
		if items[i].ID == itemID {
			items[i].StorageTip = tip
			if err := s.foodRepository.SaveInventory(ctx, items); err != nil {
				s.logger.Warn("failed to persist storage tip", zap.Error(err))
			}
			return
		}
	}
}

// GetFoodItems filters by case-insensitive substring on the name and exact
// category ("All" is a wildcard), sorted ascending by expiry date. The sort
// is stable: items sharing an expiry date keep their insertion order.
func (s *foodService) GetFoodItems(ctx context.Context, search, category string) ([]domain.FoodItemResponse, error) {
	items, err := s.foodRepository.LoadInventory(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	filtered := make([]entities.FoodItem, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if category != "" && category != entities.CategoryAll && string(item.Category) != category {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ExpiryDate.Before(filtered[j].ExpiryDate)
	})

	response := make([]domain.FoodItemResponse, 0, len(filtered))
	for _, item := range filtered {
		response = append(response, s.toResponse(item))
	}
	return response, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	item, _, err := s.findItem(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return s.toResponse(item), nil
}

// RequestDelete marks an item for deletion without touching inventory.
// Removal happens only on an explicit ConfirmDelete; this two-phase contract
// keeps a single stray request from destroying data.
func (s *foodService) RequestDelete(ctx context.Context, id string) (domain.RequestDeleteResponse, error) {
	item, _, err := s.findItem(ctx, id)
	if err != nil {
		return domain.RequestDeleteResponse{}, err
	}

	s.mu.Lock()
	s.pendingDeletion[id] = struct{}{}
	s.mu.Unlock()

	return domain.RequestDeleteResponse{
		ID:      item.ID.String(),
		Name:    item.Name,
		Pending: true,
	}, nil
}

func (s *foodService) ConfirmDelete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pendingDeletion[id]; !ok {
		return domain.ErrNoPendingDeletion
	}

	items, err := s.foodRepository.LoadInventory(ctx)
	if err != nil {
		return err
	}

	kept := make([]entities.FoodItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID.String() == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		delete(s.pendingDeletion, id)
		return domain.ErrFoodItemNotFound
	}

	if err := s.foodRepository.SaveInventory(ctx, kept); err != nil {
		return err
	}
	delete(s.pendingDeletion, id)

	if s.pruner != nil {
		if err := s.pruner.PruneItem(ctx, id); err != nil {
			s.logger.Warn("failed to prune read alerts for deleted item",
				zap.String("item_id", id), zap.Error(err))
		}
	}
	return nil
}

func (s *foodService) CancelDelete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pendingDeletion[id]; !ok {
		return domain.ErrNoPendingDeletion
	}
	delete(s.pendingDeletion, id)
	return nil
}

func (s *foodService) findItem(ctx context.Context, id string) (entities.FoodItem, int, error) {
	items, err := s.foodRepository.LoadInventory(ctx)
	if err != nil {
		return entities.FoodItem{}, -1, err
	}
	for i, item := range items {
		if item.ID.String() == id {
			return item, i, nil
		}
	}
	return entities.FoodItem{}, -1, domain.ErrFoodItemNotFound
}

func (s *foodService) toResponse(item entities.FoodItem) domain.FoodItemResponse {
	c := expiry.Classify(s.now(), item.ExpiryDate)
	return domain.FoodItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Category:    string(item.Category),
		Quantity:    item.Quantity,
		ExpiryDate:  item.ExpiryDate,
		AddedDate:   item.AddedDate,
		StorageTip:  item.StorageTip,
		UrgencyDays: c.UrgencyDays,
		ExpiryLabel: c.Label,
		Urgent:      c.Urgent(),
	}
}

// Package assistant fronts the conversational and image features. Chat is
// deliberately lossy about failure: the user always gets a reply, even when
// the collaborator is down.
package assistant

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
)

type (
	// Conversationalist produces chat replies grounded in the inventory.
	Conversationalist interface {
		Chat(ctx context.Context, items []entities.FoodItem, message string, history []domain.ChatMessage) (string, error)
	}

	// Identifier turns a photo into a structured food item draft.
	Identifier interface {
		IdentifyFood(ctx context.Context, image []byte, mimeType string) (domain.IdentifiedFood, error)
	}

	// ImageArchiver keeps a copy of identified photos in object storage.
	// Archiving is best-effort and never blocks the identify response.
	ImageArchiver interface {
		Archive(ctx context.Context, key string, data []byte, contentType string) error
	}

	AssistantService interface {
		Chat(ctx context.Context, req domain.ChatRequest) domain.ChatResponse
		Identify(ctx context.Context, image []byte, mimeType string) (domain.IdentifiedFood, error)
	}

	assistantService struct {
		chat           Conversationalist
		identifier     Identifier
		archiver       ImageArchiver
		foodRepository food.FoodRepository
		logger         *zap.Logger
		now            func() time.Time
	}
)

func NewAssistantService(chat Conversationalist, identifier Identifier, archiver ImageArchiver, foodRepository food.FoodRepository, logger *zap.Logger) AssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &assistantService{
		chat:           chat,
		identifier:     identifier,
		archiver:       archiver,
		foodRepository: foodRepository,
		logger:         logger,
		now:            time.Now,
	}
}

// Chat never returns an error. Any failure along the way degrades to the
// fixed fallback reply.
func (s *assistantService) Chat(ctx context.Context, req domain.ChatRequest) domain.ChatResponse {
	items, err := s.foodRepository.LoadInventory(ctx)
	if err != nil {
		s.logger.Warn("chat: failed to load inventory", zap.Error(err))
		return domain.ChatResponse{Reply: domain.ChatFallback}
	}

	reply, err := s.chat.Chat(ctx, items, req.Message, req.History)
	if err != nil || reply == "" {
		s.logger.Warn("chat: collaborator call failed", zap.Error(err))
		return domain.ChatResponse{Reply: domain.ChatFallback}
	}
	return domain.ChatResponse{Reply: reply}
}

func (s *assistantService) Identify(ctx context.Context, image []byte, mimeType string) (domain.IdentifiedFood, error) {
	identified, err := s.identifier.IdentifyFood(ctx, image, mimeType)
	if err != nil {
		return domain.IdentifiedFood{}, err
	}

	if s.archiver != nil {
		archive := make([]byte, len(image))
		copy(archive, image)
		key := fmt.Sprintf("identified/%d-%s", s.now().UnixMilli(), identified.Name)
		go func() {
			archiveCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.archiver.Archive(archiveCtx, key, archive, mimeType); err != nil {
				s.logger.Warn("failed to archive identified image", zap.String("key", key), zap.Error(err))
			}
		}()
	}

	return identified, nil
}

package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshkeep/freshkeep-backend/domain"
	"github.com/freshkeep/freshkeep-backend/entities"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
	"github.com/freshkeep/freshkeep-backend/pkg/store"
)

type fakeChat struct {
	reply string
	err   error
}

func (f *fakeChat) Chat(context.Context, []entities.FoodItem, string, []domain.ChatMessage) (string, error) {
	return f.reply, f.err
}

type fakeIdentifier struct {
	result domain.IdentifiedFood
	err    error
}

func (f *fakeIdentifier) IdentifyFood(context.Context, []byte, string) (domain.IdentifiedFood, error) {
	return f.result, f.err
}

type recordingArchiver struct {
	mu   sync.Mutex
	keys []string
	done chan struct{}
}

func (r *recordingArchiver) Archive(_ context.Context, key string, _ []byte, _ string) error {
	r.mu.Lock()
	r.keys = append(r.keys, key)
	r.mu.Unlock()
	close(r.done)
	return nil
}

func newFoodRepo(t *testing.T) food.FoodRepository {
	t.Helper()
	repo := food.NewFoodRepository(store.NewMemoryStore())
	require.NoError(t, repo.SaveInventory(context.Background(), []entities.FoodItem{}))
	return repo
}

func TestChat(t *testing.T) {
	svc := NewAssistantService(&fakeChat{reply: "Cook the spinach."}, nil, nil, newFoodRepo(t), nil)

	res := svc.Chat(context.Background(), domain.ChatRequest{Message: "dinner ideas?"})
	assert.Equal(t, "Cook the spinach.", res.Reply)
}

func TestChatDegradesToFallback(t *testing.T) {
	tests := []struct {
		name string
		chat Conversationalist
	}{
		{"collaborator error", &fakeChat{err: errors.New("timeout")}},
		{"empty reply", &fakeChat{reply: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAssistantService(tt.chat, nil, nil, newFoodRepo(t), nil)

			res := svc.Chat(context.Background(), domain.ChatRequest{Message: "hello"})
			assert.Equal(t, domain.ChatFallback, res.Reply)
		})
	}
}

func TestIdentify(t *testing.T) {
	want := domain.IdentifiedFood{Name: "Banana", Quantity: "6", Category: "Produce", ExpiryDate: "2026-03-14"}
	svc := NewAssistantService(nil, &fakeIdentifier{result: want}, nil, newFoodRepo(t), nil)

	got, err := svc.Identify(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestIdentifyFailure(t *testing.T) {
	svc := NewAssistantService(nil, &fakeIdentifier{err: domain.ErrIdentifyFailed}, nil, newFoodRepo(t), nil)

	_, err := svc.Identify(context.Background(), []byte("img"), "image/png")
	assert.ErrorIs(t, err, domain.ErrIdentifyFailed)
}

func TestIdentifyArchivesImage(t *testing.T) {
	archiver := &recordingArchiver{done: make(chan struct{})}
	identified := domain.IdentifiedFood{Name: "Banana", Quantity: "6", Category: "Produce", ExpiryDate: "2026-03-14"}
	svc := NewAssistantService(nil, &fakeIdentifier{result: identified}, archiver, newFoodRepo(t), nil)

	_, err := svc.Identify(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)

	select {
	case <-archiver.done:
	case <-time.After(2 * time.Second):
		t.Fatal("archive was never called")
	}

	archiver.mu.Lock()
	defer archiver.mu.Unlock()
	require.Len(t, archiver.keys, 1)
	assert.Contains(t, archiver.keys[0], "identified/")
	assert.Contains(t, archiver.keys[0], "Banana")
}

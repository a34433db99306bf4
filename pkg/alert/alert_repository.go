package alert

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/freshkeep/freshkeep-backend/pkg/store"
)

type (
	// ReadAlertRepository owns the persisted set of acknowledged alert IDs.
	// The record is independent of the inventory record: losing either one
	// leaves the other intact.
	ReadAlertRepository interface {
		LoadReadIDs(ctx context.Context) ([]string, error)
		SaveReadIDs(ctx context.Context, ids []string) error
	}

	readAlertRepository struct {
		kv store.KeyValue
	}
)

func NewReadAlertRepository(kv store.KeyValue) ReadAlertRepository {
	return &readAlertRepository{kv: kv}
}

func (r *readAlertRepository) LoadReadIDs(ctx context.Context) ([]string, error) {
	raw, err := r.kv.Get(ctx, store.KeyReadAlerts)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *readAlertRepository) SaveReadIDs(ctx context.Context, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, store.KeyReadAlerts, raw)
}

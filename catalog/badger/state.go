// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/shopsense/catalog"
	"github.com/poiesic/shopsense/core"
)

// StateRepository implements catalog.StateRepository for BadgerDB.
type StateRepository struct {
	backend *Backend
}

var _ catalog.StateRepository = (*StateRepository)(nil)

// NewStateRepository creates a new StateRepository.
func NewStateRepository(backend *Backend) *StateRepository {
	return &StateRepository{
		backend: backend,
	}
}

// SaveIndexState persists the index state.
func (r *StateRepository) SaveIndexState(ctx context.Context, state *core.IndexState) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		state.UpdatedAt = time.Now().UTC()
		key := makeIndexStateKey()
		value := catalog.MarshalIndexState(state)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadIndexState retrieves the persisted index state.
// Returns nil, nil if no state has been saved.
func (r *StateRepository) LoadIndexState(ctx context.Context) (*core.IndexState, error) {
	var state *core.IndexState
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeIndexStateKey()
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			state, unmarshalErr = catalog.UnmarshalIndexState(val)
			return unmarshalErr
		})
	}, false)

	return state, err
}

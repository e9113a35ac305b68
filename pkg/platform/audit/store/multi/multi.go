// Package multi fans one audit event out to several stores.
package multi

import (
	"context"
	"errors"

	audit "benefitd/pkg/platform/audit"
)

// Store appends every event to each wrapped store in order. A failing store
// does not stop the others.
type Store struct {
	stores []audit.Store
}

func New(stores ...audit.Store) *Store {
	return &Store{stores: stores}
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	var errs []error
	for _, st := range s.stores {
		if err := st.Append(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ListByModule reads from the first store that supports listing.
func (s *Store) ListByModule(ctx context.Context, module string) ([]audit.Event, error) {
	for _, st := range s.stores {
		if r, ok := st.(audit.Reader); ok {
			return r.ListByModule(ctx, module)
		}
	}
	return nil, errors.New("no audit store supports listing")
}

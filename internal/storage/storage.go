// Package storage is the key-value persistence behind the cart and the order history.
// Values are JSON strings stored under fixed keys.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	CartKey   = "storehub-cart"
	OrdersKey = "storehub-orders"
)

var ErrCorrupt = errors.New("storage: corrupt value")

type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// ReadJSON decodes the value under key into v. ok is false when the key is absent.
// A value that does not decode yields an error matching ErrCorrupt.
func ReadJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nachofazah/Ciu-RedSocial/internal/models"
	"github.com/nachofazah/Ciu-RedSocial/internal/storage"
)

const UserKey = "session-user"

// Holder is the "who is logged in" state of one visitor.
type Holder struct {
	store     storage.Store
	visitorID string
	teardown  func()
}

// NewHolder binds the holder to a visitor. teardown runs after every logout.
func NewHolder(store storage.Store, visitorID string, teardown func()) *Holder {
	return &Holder{store: store, visitorID: visitorID, teardown: teardown}
}

func (h *Holder) VisitorID() string { return h.visitorID }

// Current returns the persisted user, or nil when nobody is logged in.
// A blob that no longer decodes is dropped and reads as no user.
func (h *Holder) Current(ctx context.Context) (*models.User, error) {
	raw, err := h.store.Get(ctx, h.visitorID, UserKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		_ = h.store.Delete(ctx, h.visitorID, UserKey)
		return nil, nil
	}
	return &u, nil
}

func (h *Holder) Login(ctx context.Context, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := h.store.Set(ctx, h.visitorID, UserKey, raw); err != nil {
		return fmt.Errorf("save session user: %w", err)
	}
	return nil
}

func (h *Holder) Logout(ctx context.Context) error {
	err := h.store.Delete(ctx, h.visitorID, UserKey)
	if h.teardown != nil {
		h.teardown()
	}
	if err != nil {
		return fmt.Errorf("clear session user: %w", err)
	}
	return nil
}

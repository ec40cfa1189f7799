package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// FavoriteRepository is a per-user set of salon ids, session-scoped: it is
// not persisted across restarts.
type FavoriteRepository interface {
	List(ctx context.Context, phone string) []string
	// Toggle flips membership and reports whether the salon is now a favorite.
	Toggle(ctx context.Context, phone, salonID string) bool
	Has(ctx context.Context, phone, salonID string) bool
}

type favoriteRepository struct {
	mu        sync.RWMutex
	favorites map[string]map[string]struct{} // phone -> set of salon ids
	order     map[string][]string            // phone -> insertion order
	log       *zap.Logger
}

func NewFavoriteRepository(log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		favorites: make(map[string]map[string]struct{}),
		order:     make(map[string][]string),
		log:       log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) List(_ context.Context, phone string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.order[phone]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (r *favoriteRepository) Toggle(_ context.Context, phone, salonID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.favorites[phone]
	if !ok {
		set = make(map[string]struct{})
		r.favorites[phone] = set
	}

	if _, has := set[salonID]; has {
		delete(set, salonID)
		ids := r.order[phone]
		for i, id := range ids {
			if id == salonID {
				r.order[phone] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
		return false
	}

	set[salonID] = struct{}{}
	r.order[phone] = append(r.order[phone], salonID)
	return true
}

func (r *favoriteRepository) Has(_ context.Context, phone, salonID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, has := r.favorites[phone][salonID]
	return has
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"salon-booking/internal/data/entity"

	"go.uber.org/zap"
)

// SalonRepository serves the static salon catalog. The catalog is loaded
// once and never mutated.
type SalonRepository interface {
	Locations(ctx context.Context) []string
	ListByLocation(ctx context.Context, location string) []entity.Salon
	FindByID(ctx context.Context, id string) *entity.Salon
}

type salonRepository struct {
	catalog   entity.Catalog
	byID      map[string]*entity.Salon
	locations []string
	log       *zap.Logger
}

// NewSalonRepository reads the catalog JSON file and validates that salon
// ids are unique across all locations.
func NewSalonRepository(path string, log *zap.Logger) (SalonRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var catalog entity.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	repo := &salonRepository{
		catalog: catalog,
		byID:    make(map[string]*entity.Salon),
		log:     log.With(zap.String("repository", "salon")),
	}

	for location, salons := range catalog {
		repo.locations = append(repo.locations, location)
		for i := range salons {
			s := &catalog[location][i]
			if _, dup := repo.byID[s.ID]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateSalonID, s.ID)
			}
			repo.byID[s.ID] = s
		}
	}

	repo.log.Info("Catalog loaded",
		zap.Int("locations", len(repo.locations)),
		zap.Int("salons", len(repo.byID)),
	)

	return repo, nil
}

func (r *salonRepository) Locations(_ context.Context) []string {
	out := make([]string, len(r.locations))
	copy(out, r.locations)
	return out
}

func (r *salonRepository) ListByLocation(_ context.Context, location string) []entity.Salon {
	salons, ok := r.catalog[location]
	if !ok {
		return nil
	}
	out := make([]entity.Salon, len(salons))
	copy(out, salons)
	return out
}

func (r *salonRepository) FindByID(_ context.Context, id string) *entity.Salon {
	s, ok := r.byID[id]
	if !ok {
		return nil
	}
	cp := *s
	return &cp
}

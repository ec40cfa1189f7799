package usecase

import (
	"context"
	"strconv"
	"strings"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	Locations(ctx context.Context) *response.LocationsResponse

	// List returns the location's salons after filter and search are
	// applied, localized for the active language and annotated with the
	// caller's favorite flags.
	List(ctx context.Context, phone, location, filter, query string) ([]response.SalonResponse, error)

	Detail(ctx context.Context, phone, salonID string) (*response.SalonDetailResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	locale LocaleService
	log    *zap.Logger

	// queries arrive at keystroke rate; only the settled one is logged
	searchLog *Debouncer
}

func NewCatalogService(repo *repository.Repository, locale LocaleService, config *utils.Config, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:      repo,
		locale:    locale,
		log:       log,
		searchLog: NewDebouncer(config.Search.Debounce),
	}
}

func (s *catalogService) Locations(ctx context.Context) *response.LocationsResponse {
	return &response.LocationsResponse{Locations: s.repo.Salon.Locations(ctx)}
}

// topRated reports whether the salon's rating parses and exceeds 4.0.
// A rating that fails to parse never counts as top.
func topRated(salon *entity.Salon) bool {
	rating, err := strconv.ParseFloat(salon.Rating, 64)
	return err == nil && rating > 4
}

// offersCategory reports whether any service targets the category directly
// or is unisex.
func offersCategory(salon *entity.Salon, category entity.ServiceCategory) bool {
	for _, svc := range salon.ServicesList {
		if svc.Category == category || svc.Category == entity.CategoryUnisex {
			return true
		}
	}
	return false
}

func matchesFilter(salon *entity.Salon, filter string) bool {
	switch filter {
	case "", request.FilterAll:
		return true
	case request.FilterTop:
		return topRated(salon)
	case request.FilterMen:
		return offersCategory(salon, entity.CategoryMen)
	case request.FilterWomen:
		return offersCategory(salon, entity.CategoryWomen)
	default:
		return true
	}
}

// matchesQuery matches the trimmed, lower-cased query as a substring of the
// displayed name, the services summary, or the displayed address. Each field
// is checked independently.
func matchesQuery(name, services, address, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), query) ||
		strings.Contains(strings.ToLower(services), query) ||
		strings.Contains(strings.ToLower(address), query)
}

func (s *catalogService) List(ctx context.Context, phone, location, filter, query string) ([]response.SalonResponse, error) {
	salons := s.repo.Salon.ListByLocation(ctx, location)
	if salons == nil {
		return nil, ErrLocationNotFound
	}

	lang, err := s.repo.Locale.ActiveLanguage(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.SalonResponse, 0, len(salons))
	for i := range salons {
		salon := &salons[i]
		if !matchesFilter(salon, filter) {
			continue
		}

		name := s.locale.ResolveSalonName(ctx, lang, salon.ID, salon.Name)
		address := s.locale.ResolveSalonAddress(ctx, lang, salon.ID, salon.Address)
		if !matchesQuery(name, salon.Services, address, query) {
			continue
		}

		favorite := phone != "" && s.repo.Favorite.Has(ctx, phone, salon.ID)
		out = append(out, response.SalonToResponse(salon, name, address, favorite))
	}

	if q := strings.TrimSpace(query); q != "" {
		matched := len(out)
		s.searchLog.Do(func() {
			s.log.Info("Search settled",
				zap.String("location", location),
				zap.String("query", q),
				zap.Int("matched", matched),
			)
		})
	}

	return out, nil
}

func (s *catalogService) Detail(ctx context.Context, phone, salonID string) (*response.SalonDetailResponse, error) {
	salon := s.repo.Salon.FindByID(ctx, salonID)
	if salon == nil {
		return nil, ErrSalonNotFound
	}

	lang, err := s.repo.Locale.ActiveLanguage(ctx)
	if err != nil {
		return nil, err
	}

	name := s.locale.ResolveSalonName(ctx, lang, salon.ID, salon.Name)
	address := s.locale.ResolveSalonAddress(ctx, lang, salon.ID, salon.Address)

	services := make([]response.ServiceResponse, 0, len(salon.ServicesList))
	for _, svc := range salon.ServicesList {
		services = append(services, response.ServiceResponse{
			Name:     s.locale.ResolveServiceName(ctx, lang, svc.Name),
			Price:    svc.Price,
			Duration: svc.Duration,
			Category: string(svc.Category),
		})
	}

	favorite := phone != "" && s.repo.Favorite.Has(ctx, phone, salon.ID)
	detail := response.SalonToDetailResponse(salon, name, address, services, favorite)
	return &detail, nil
}

package usecase

import (
	"context"
	"strings"

	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/response"

	"go.uber.org/zap"
)

// LocaleKey is a tagged dictionary key. Keys are constructed from typed
// fields rather than interpolated strings, so a malformed key is a compile
// error, not a silent fallback.
type LocaleKey interface {
	Key() string
}

// SalonField addresses one translatable field of a salon.
type SalonField struct {
	ID    string
	Field string // "name" or "address"
}

func (k SalonField) Key() string {
	return "data.salons." + k.ID + "." + k.Field
}

// ServiceField addresses a service display name by its slug.
type ServiceField struct {
	Slug string
}

func (k ServiceField) Key() string {
	return "data.services." + k.Slug
}

// LocaleService resolves display strings against the per-language
// dictionaries. Every resolver falls back to the supplied default text when
// the key is missing, so an incomplete dictionary never blanks the UI.
type LocaleService interface {
	Resolve(ctx context.Context, lang string, key LocaleKey, fallback string) string
	ResolveSalonName(ctx context.Context, lang, salonID, fallback string) string
	ResolveSalonAddress(ctx context.Context, lang, salonID, fallback string) string
	ResolveServiceName(ctx context.Context, lang, serviceName string) string

	Language(ctx context.Context) (*response.LanguageResponse, error)
	SetLanguage(ctx context.Context, lang string) (*response.LanguageResponse, error)
}

type localeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLocaleService(repo *repository.Repository, log *zap.Logger) LocaleService {
	return &localeService{
		repo: repo,
		log:  log,
	}
}

// Slug normalizes a display name into a dictionary key segment: lower-cased,
// every run of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens stripped. Applying it twice gives the same
// result as applying it once.
func Slug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	hyphen := false
	for _, r := range name {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return b.String()
}

func (s *localeService) Resolve(ctx context.Context, lang string, key LocaleKey, fallback string) string {
	if v, ok := s.repo.Locale.Lookup(ctx, lang, key.Key()); ok {
		return v
	}
	return fallback
}

func (s *localeService) ResolveSalonName(ctx context.Context, lang, salonID, fallback string) string {
	if salonID == "" {
		return fallback
	}
	return s.Resolve(ctx, lang, SalonField{ID: salonID, Field: "name"}, fallback)
}

func (s *localeService) ResolveSalonAddress(ctx context.Context, lang, salonID, fallback string) string {
	if salonID == "" {
		return fallback
	}
	return s.Resolve(ctx, lang, SalonField{ID: salonID, Field: "address"}, fallback)
}

func (s *localeService) ResolveServiceName(ctx context.Context, lang, serviceName string) string {
	slug := Slug(serviceName)
	if slug == "" {
		return serviceName
	}
	return s.Resolve(ctx, lang, ServiceField{Slug: slug}, serviceName)
}

func (s *localeService) Language(ctx context.Context) (*response.LanguageResponse, error) {
	active, err := s.repo.Locale.ActiveLanguage(ctx)
	if err != nil {
		return nil, err
	}
	return &response.LanguageResponse{
		Active:    active,
		Available: s.repo.Locale.Languages(ctx),
	}, nil
}

func (s *localeService) SetLanguage(ctx context.Context, lang string) (*response.LanguageResponse, error) {
	if err := s.repo.Locale.SetActiveLanguage(ctx, lang); err != nil {
		s.log.Warn("Rejected language change", zap.String("lang", lang))
		return nil, ErrLanguageUnknown
	}

	s.log.Info("Language changed", zap.String("lang", lang))
	return &response.LanguageResponse{
		Active:    lang,
		Available: s.repo.Locale.Languages(ctx),
	}, nil
}

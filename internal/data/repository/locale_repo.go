package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"salon-booking/pkg/storage"

	"go.uber.org/zap"
)

// languageKey is the persisted key for the active language preference.
const languageKey = "trimtime_lang"

// LocaleRepository serves per-language translation dictionaries, loaded from
// <dir>/<lang>.json files of flat key -> string maps, and persists the
// active language preference.
type LocaleRepository interface {
	// Lookup resolves key in the given language; false when absent.
	Lookup(ctx context.Context, lang, key string) (string, bool)
	Languages(ctx context.Context) []string
	HasLanguage(ctx context.Context, lang string) bool

	ActiveLanguage(ctx context.Context) (string, error)
	SetActiveLanguage(ctx context.Context, lang string) error
}

type localeRepository struct {
	translations map[string]map[string]string
	languages    []string
	defaultLang  string
	store        storage.Store
	log          *zap.Logger
}

// NewLocaleRepository loads every *.json dictionary found under dir.
func NewLocaleRepository(dir, defaultLang string, store storage.Store, log *zap.Logger) (LocaleRepository, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir %s: %w", dir, err)
	}

	repo := &localeRepository{
		translations: make(map[string]map[string]string),
		defaultLang:  defaultLang,
		store:        store,
		log:          log.With(zap.String("repository", "locale")),
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(e.Name(), ".json")

		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}

		var dict map[string]string
		if err := json.Unmarshal(raw, &dict); err != nil {
			return nil, fmt.Errorf("decode locale %s: %w", lang, err)
		}

		repo.translations[lang] = dict
		repo.languages = append(repo.languages, lang)
	}
	sort.Strings(repo.languages)

	repo.log.Info("Locales loaded", zap.Strings("languages", repo.languages))
	return repo, nil
}

func (r *localeRepository) Lookup(_ context.Context, lang, key string) (string, bool) {
	dict, ok := r.translations[lang]
	if !ok {
		return "", false
	}
	v, ok := dict[key]
	return v, ok
}

func (r *localeRepository) Languages(_ context.Context) []string {
	out := make([]string, len(r.languages))
	copy(out, r.languages)
	return out
}

func (r *localeRepository) HasLanguage(_ context.Context, lang string) bool {
	_, ok := r.translations[lang]
	return ok
}

func (r *localeRepository) ActiveLanguage(_ context.Context) (string, error) {
	var lang string
	found, err := r.store.Load(languageKey, &lang)
	if err != nil {
		r.log.Error("Failed to load language preference", zap.Error(err))
		return "", fmt.Errorf("load language: %w", err)
	}
	if !found || lang == "" {
		return r.defaultLang, nil
	}
	return lang, nil
}

func (r *localeRepository) SetActiveLanguage(_ context.Context, lang string) error {
	if _, ok := r.translations[lang]; !ok {
		return ErrUnknownLanguage
	}
	if err := r.store.Save(languageKey, lang); err != nil {
		r.log.Error("Failed to save language preference", zap.Error(err), zap.String("lang", lang))
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}

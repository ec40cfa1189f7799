package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"salon-booking/internal/data/repository"
	"salon-booking/pkg/storage"
	"salon-booking/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCatalog = `{
  "Kaichar": [
    {
      "id": "raj-beauty",
      "name": "Raj Beauty Parlour",
      "address": "Near Kaichar Market, Kaichar",
      "services": "Hair Cut • Facial Treatment",
      "rating": "4.8",
      "status": "Open",
      "ratingCount": 245,
      "servicesList": [
        { "name": "Hair Cut", "price": 300, "duration": "30 min", "category": "unisex" },
        { "name": "Facial Treatment", "price": 800, "duration": "60 min", "category": "unisex" },
        { "name": "Beard Trim", "price": 200, "duration": "20 min", "category": "men" },
        { "name": "Manicure", "price": 400, "duration": "45 min", "category": "women" }
      ]
    },
    {
      "id": "glamour-studio",
      "name": "Glamour Studio",
      "address": "Main Road, Kaichar",
      "services": "Hair Styling • Makeup",
      "rating": "4.0",
      "status": "Open",
      "ratingCount": 189,
      "servicesList": [
        { "name": "Bridal Makeup", "price": 2500, "duration": "120 min", "category": "women" }
      ]
    },
    {
      "id": "sunset-salon-closed",
      "name": "Sunset Salon",
      "address": "Opposite Lakeside, Kaichar",
      "services": "Hair Cut • Spa • Waxing",
      "rating": "not-a-number",
      "status": "Closed",
      "ratingCount": 58,
      "servicesList": [
        { "name": "Relaxing Spa", "price": 1200, "duration": "90 min", "category": "unisex" }
      ]
    }
  ]
}`

const testLocaleEN = `{
  "data.salons.raj-beauty.name": "Raj Beauty Parlour",
  "data.salons.raj-beauty.address": "Near Kaichar Market, Kaichar",
  "data.services.hair-cut": "Hair Cut"
}`

const testLocaleBN = `{
  "data.salons.raj-beauty.name": "রাজ বিউটি পার্লার",
  "data.services.hair-cut": "চুল কাটা"
}`

func newTestConfig(t *testing.T) *utils.Config {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "salons.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))

	localesDir := filepath.Join(dir, "locales")
	require.NoError(t, os.Mkdir(localesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(localesDir, "en.json"), []byte(testLocaleEN), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(localesDir, "bn.json"), []byte(testLocaleBN), 0o644))

	return &utils.Config{
		App: utils.AppConfig{Name: "salon-booking", Port: "0"},
		Data: utils.DataConfig{
			CatalogPath:     catalogPath,
			LocalesDir:      localesDir,
			DefaultLanguage: "en",
		},
		Auth: utils.AuthConfig{
			DemoOTP:       "1234",
			SimDelay:      0,
			SessionTTL:    time.Hour,
			PendingExpiry: 10 * time.Minute,
		},
		Search: utils.SearchConfig{Debounce: 5 * time.Millisecond},
	}
}

func newTestService(t *testing.T) (*Service, *repository.Repository, *utils.Config) {
	t.Helper()

	config := newTestConfig(t)
	repo, err := repository.NewRepository(storage.NewMemStore(), config, zap.NewNop())
	require.NoError(t, err)

	return NewService(repo, config, zap.NewNop()), repo, config
}

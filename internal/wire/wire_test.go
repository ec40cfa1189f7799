package wire

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"salon-booking/internal/data/repository"
	"salon-booking/pkg/storage"
	"salon-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
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
        { "name": "Facial Treatment", "price": 800, "duration": "60 min", "category": "unisex" }
      ]
    }
  ]
}`

func newTestApp(t *testing.T) *App {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "salons.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))

	localesDir := filepath.Join(dir, "locales")
	require.NoError(t, os.Mkdir(localesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(localesDir, "en.json"), []byte(`{}`), 0o644))

	config := &utils.Config{
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
	}

	repo, err := repository.NewRepository(storage.NewMemStore(), config, zap.NewNop())
	require.NoError(t, err)

	return Wiring(repo, config, zap.NewNop())
}

func doJSON(t *testing.T, app *App, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Status  bool           `json:"status"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func signUpToken(t *testing.T, app *App) string {
	t.Helper()

	rec := doJSON(t, app, http.MethodPost, "/api/auth/sign-up", "", map[string]any{
		"name":     "Asha",
		"phone":    "9999999999",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, app, http.MethodPost, "/api/auth/sign-up/verify", "", map[string]any{
		"phone": "9999999999",
		"otp":   "1234",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	token, _ := decodeData(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestSalonListPublic(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/api/salons?location=Kaichar", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// location is mandatory
	rec = doJSON(t, app, http.MethodGet, "/api/salons", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/api/salons?location=Nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingRequiresSession(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/api/bookings", "", map[string]any{
		"salon_id": "raj-beauty",
		"date":     "2026-09-15",
		"time":     "10:00 AM",
		"services": []string{"Hair Cut"},
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingFlowOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := signUpToken(t, app)

	rec := doJSON(t, app, http.MethodPost, "/api/bookings", token, map[string]any{
		"salon_id": "raj-beauty",
		"date":     "2026-09-15",
		"time":     "10:00 AM",
		"services": []string{"Hair Cut", "Facial Treatment"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data := decodeData(t, rec)
	assert.Equal(t, float64(1100), data["total_price"])
	assert.Equal(t, "upcoming", data["status"])

	id, _ := data["id"].(string)
	require.NotEmpty(t, id)

	rec = doJSON(t, app, http.MethodPost, "/api/bookings/"+id+"/cancel", token, map[string]any{
		"reason": "changed my mind",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "cancelled", decodeData(t, rec)["status"])
}

func TestRateBookingPartialImagesOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := signUpToken(t, app)

	rec := doJSON(t, app, http.MethodPost, "/api/bookings", token, map[string]any{
		"salon_id": "raj-beauty",
		"date":     "2026-09-15",
		"time":     "10:00 AM",
		"services": []string{"Hair Cut"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, _ := decodeData(t, rec)["id"].(string)
	require.NotEmpty(t, id)

	rec = doJSON(t, app, http.MethodPost, "/api/admin/bookings/"+id+"/complete", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("rating", "5"))
	require.NoError(t, mw.WriteField("comment", "Lovely"))

	photo, err := mw.CreateFormFile("images", "after.png")
	require.NoError(t, err)
	_, err = photo.Write([]byte("\x89PNG\r\n\x1a\nfakeimagedata"))
	require.NoError(t, err)

	notes, err := mw.CreateFormFile("images", "notes.txt")
	require.NoError(t, err)
	_, err = notes.Write([]byte("just some plain text"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/rate", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	out := httptest.NewRecorder()
	app.Router.ServeHTTP(out, req)
	require.Equal(t, http.StatusOK, out.Code, out.Body.String())

	var envelope struct {
		Status  bool           `json:"status"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
		Errors  []string       `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(out.Body.Bytes(), &envelope))

	// the rating sticks with the photo that converted
	assert.True(t, envelope.Status)
	feedback, _ := envelope.Data["feedback"].(map[string]any)
	require.NotNil(t, feedback)
	assert.Equal(t, float64(5), feedback["rating"])
	images, _ := feedback["images"].([]any)
	assert.Len(t, images, 1)

	// the rejected upload is named in the response
	assert.Contains(t, envelope.Message, "rejected")
	require.Len(t, envelope.Errors, 1)
	assert.Contains(t, envelope.Errors[0], "notes.txt")
}

func TestSignInWrongPasswordOverHTTP(t *testing.T) {
	app := newTestApp(t)
	signUpToken(t, app)

	rec := doJSON(t, app, http.MethodPost, "/api/auth/sign-in", "", map[string]any{
		"phone":    "9999999999",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLanguageEndpoints(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/api/language", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", decodeData(t, rec)["active"])

	rec = doJSON(t, app, http.MethodPut, "/api/language", "", map[string]any{"language": "fr"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

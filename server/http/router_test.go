package serverhttp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	excelize "github.com/xuri/excelize/v2"

	"rating-service/internal/bitrix"
	"rating-service/internal/config"
	serverhttp "rating-service/server/http"
)

func ratingXLSX(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Операторы"); err != nil {
		t.Fatal(err)
	}
	header := []any{"Сотрудник", "Начислено", "Потрачено", "Остаток"}
	row := []any{"Иванов", "500", "100", "400"}
	_ = f.SetSheetRow("Операторы", "A1", &header)
	_ = f.SetSheetRow("Операторы", "A2", &row)
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestRouter(t *testing.T, upstream http.HandlerFunc) http.Handler {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client, err := bitrix.New(bitrix.Config{XLSXURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{AllowOrigins: []string{"*"}, CacheMaxAge: 60}
	return serverhttp.NewRouter(cfg, client, zerolog.Nop())
}

func TestRatingEndpoint(t *testing.T) {
	body := ratingXLSX(t)
	r := newTestRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(body)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rating", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Fatalf("cache-control = %q", cc)
	}
	if ao := rec.Header().Get("Access-Control-Allow-Origin"); ao != "*" {
		t.Fatalf("allow-origin = %q", ao)
	}

	var got struct {
		UpdatedAt string `json:"updatedAt"`
		Operators []struct {
			Name    string  `json:"name"`
			Group   string  `json:"group"`
			Balance float64 `json:"balance"`
		} `json:"operators"`
		AUP []any `json:"aup"`
		All []any `json:"all"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.UpdatedAt == "" {
		t.Fatal("updatedAt missing")
	}
	if len(got.Operators) != 1 || got.Operators[0].Name != "Иванов" || got.Operators[0].Group != "operators" {
		t.Fatalf("operators = %+v", got.Operators)
	}
	if got.AUP == nil || got.All == nil {
		t.Fatal("aup/all must be arrays, not null")
	}
}

func TestRatingUpstreamFailure(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rating", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["error"] == "" {
		t.Fatalf("body = %s", rec.Body)
	}
}

func TestRatingHTMLUpstream(t *testing.T) {
	// апстрим ответил 200, но отдал страницу логина вместо файла
	r := newTestRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>Войдите в портал</body></html>"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rating", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestPreflightAndNotFound(t *testing.T) {
	r := newTestRouter(t, func(http.ResponseWriter, *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/rating", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("preflight: status %d, body %q", rec.Code, rec.Body)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("preflight without CORS headers")
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("not found: status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health: status %d", rec.Code)
	}
}

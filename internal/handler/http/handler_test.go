package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-coffee-freezer/internal/logger"
	"github.com/MKhiriev/go-coffee-freezer/internal/metrics"
	"github.com/MKhiriev/go-coffee-freezer/internal/mock"
	"github.com/MKhiriev/go-coffee-freezer/internal/service"
	"github.com/MKhiriev/go-coffee-freezer/internal/view"
)

// ─────────────────────────────────────────────
// Test harness
// ─────────────────────────────────────────────

type testServices struct {
	bag       *mock.MockBagService
	vial      *mock.MockVialService
	freezer   *mock.MockFreezerService
	inventory *mock.MockInventoryService
	appInfo   *mock.MockAppInfoService
	health    *mock.MockHealthService
}

type testServer struct {
	router   *chi.Mux
	services *testServices
	metrics  *metrics.Metrics
}

// newTestServer wires the real router, renderer and metrics over gomock
// services. Unexpected service calls fail the test.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		bag:       mock.NewMockBagService(ctrl),
		vial:      mock.NewMockVialService(ctrl),
		freezer:   mock.NewMockFreezerService(ctrl),
		inventory: mock.NewMockInventoryService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
		health:    mock.NewMockHealthService(ctrl),
	}

	renderer, err := view.NewRenderer("Bean Vault", "1.0.0")
	require.NoError(t, err)

	m := metrics.New()
	h := NewHandler(&service.Services{
		BagService:       ts.bag,
		VialService:      ts.vial,
		FreezerService:   ts.freezer,
		InventoryService: ts.inventory,
		AppInfoService:   ts.appInfo,
		HealthService:    ts.health,
	}, renderer, m, logger.Nop())

	return &testServer{router: h.Init(), services: ts, metrics: m}
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validBagForm() url.Values {
	return url.Values{
		"name":               {"Kochere"},
		"brew_method":        {"filter"},
		"roaster":            {"Tim Wendelboe"},
		"origin":             {"Ethiopia"},
		"tasting_notes":      {"bergamot"},
		"notes":              {""},
		"target_freeze_date": {"2026-01-10"},
		"grams":              {"250"},
	}
}

func validVialForm() url.Values {
	return url.Values{
		"name":               {"Huila"},
		"brew_method":        {"espresso"},
		"roaster":            {"Coffee Collective"},
		"origin":             {"Colombia"},
		"vials":              {"6"},
		"grams_per_vial":     {"18"},
		"actual_freeze_date": {"2026-01-03"},
	}
}

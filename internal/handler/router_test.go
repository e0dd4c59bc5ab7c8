package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/Matheus-Mantovani/Rentify/internal/handler"
	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var testOrigins = []string{"http://localhost:5173"}

func TestHealthz(t *testing.T) {
	router := handler.NewRouter(handler.Services{}, observability.NewMetrics(), testOrigins, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	router := handler.NewRouter(handler.Services{}, observability.NewMetrics(), testOrigins, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	router := handler.NewRouter(handler.Services{}, observability.NewMetrics(), testOrigins, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router := handler.NewRouter(handler.Services{}, observability.NewMetrics(), testOrigins, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/views/leases", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// stubLeases serves a fixed lease list for routing tests.
type stubLeases struct{}

func (stubLeases) ListLeases(_ context.Context, _ string, _ domain.LeaseFilter) ([]domain.Lease, error) {
	return []domain.Lease{{
		ID: 1, Status: domain.LeaseActive,
		EndDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Tenant:  &domain.Tenant{ID: 2, FullName: "Ana Lima"},
	}}, nil
}

func (stubLeases) GetLease(_ context.Context, _ string, id int64) (*domain.Lease, error) {
	return nil, &domain.ErrNotFound{Resource: "lease", ID: "1"}
}

func (stubLeases) GetLeaseGuarantors(_ context.Context, _ string, _ int64) ([]domain.LeaseGuarantor, error) {
	return nil, nil
}

func (stubLeases) TerminateLease(_ context.Context, _ string, _ int64, _ *domain.TerminateLeaseRequest) error {
	return nil
}

type stubCache[T any] struct{}

func (stubCache[T]) Get(string) (T, bool)    { var zero T; return zero, false }
func (stubCache[T]) Set(string, T)           {}
func (stubCache[T]) Delete(string)           {}
func (stubCache[T]) InvalidatePrefix(string) {}

func bearerToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestLeasesViewWithToken(t *testing.T) {
	metrics := observability.NewMetrics()
	logger := zap.NewNop()
	svc := handler.Services{
		Auth:   service.NewAuth(nil, metrics, logger),
		Leases: service.NewLeases(stubLeases{}, stubCache[[]domain.Lease]{}, metrics, logger),
	}
	router := handler.NewRouter(svc, metrics, testOrigins, logger)

	req := httptest.NewRequest(http.MethodGet, "/v1/views/leases", nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var rows []service.LeaseRow
	if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(rows) != 1 || rows[0].TenantDisplay != "Ana Lima" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestLeasesViewRejectsBadToken(t *testing.T) {
	metrics := observability.NewMetrics()
	svc := handler.Services{Auth: service.NewAuth(nil, metrics, zap.NewNop())}
	router := handler.NewRouter(svc, metrics, testOrigins, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/v1/views/leases", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "malformed token") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestContractLeaseNotFoundMapsTo404(t *testing.T) {
	metrics := observability.NewMetrics()
	logger := zap.NewNop()
	landlords := service.NewLandlords(nil, stubLeases{}, nil, nil, metrics, logger)
	svc := handler.Services{
		Auth:      service.NewAuth(nil, metrics, logger),
		Documents: service.NewDocuments(stubLeases{}, nil, landlords, metrics, logger),
	}
	router := handler.NewRouter(svc, metrics, testOrigins, logger)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/leases/1/contract", nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/Matheus-Mantovani/Rentify/internal/infra/observability"
	"github.com/Matheus-Mantovani/Rentify/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Services bundles the per-view services the router dispatches to.
type Services struct {
	Auth          *service.Auth
	Board         *service.Board
	Leases        *service.Leases
	Tenants       *service.Tenants
	Landlords     *service.Landlords
	Properties    *service.Properties
	Maintenance   *service.Maintenance
	Guarantors    *service.Guarantors
	Dashboard     *service.Dashboard
	Notifications *service.Notifications
	Payments      *service.Payments
	Documents     *service.Documents
	Locations     *service.Locations
}

// NewRouter creates the HTTP router with all routes and middleware.
// Routes follow the API contract defined for the Rentify dashboard frontend.
func NewRouter(svc Services, metrics *observability.Metrics, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(observability.RequestLogger(logger, metrics))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Public routes
		r.Post("/auth/login", authLoginHandler(svc.Auth, logger))
		r.Post("/auth/register", authRegisterHandler(svc.Auth, logger))

		// Everything else rides the dashboard session token.
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(svc.Auth, logger))

			// List views
			r.Get("/views/payments/board", boardHandler(svc.Board, logger))
			r.Get("/views/leases", leasesHandler(svc.Leases, logger))
			r.Get("/views/tenants", tenantsHandler(svc.Tenants, logger))
			r.Get("/views/landlords/{profileId}", landlordHandler(svc.Landlords, logger))
			r.Get("/views/landlords", landlordDefaultHandler(svc.Landlords, logger))
			r.Get("/views/properties", propertiesHandler(svc.Properties, logger))
			r.Get("/views/maintenance", maintenanceHandler(svc.Maintenance, logger))
			r.Get("/views/guarantors", guarantorsHandler(svc.Guarantors, logger))

			// Dashboard, notifications and reports
			r.Get("/views/dashboard", dashboardHandler(svc.Dashboard, logger))
			r.Get("/views/notifications", notificationsHandler(svc.Notifications, logger))
			r.Get("/views/reports/late-payments", latePaymentsHandler(svc.Notifications, logger))

			// Mutations
			r.Post("/payments", paymentCreateHandler(svc.Payments, logger))
			r.Post("/leases/{leaseId}/terminate", leaseTerminateHandler(svc.Leases, logger))

			// Printable documents
			r.Get("/documents/leases/{leaseId}/contract", contractHandler(svc.Documents, logger))
			r.Get("/documents/payments/{paymentId}/receipt", receiptHandler(svc.Documents, logger))
			r.Post("/documents/receipts/batch", receiptBatchHandler(svc.Documents, logger))

			// Location lookups
			r.Get("/locations/states", statesHandler(svc.Locations, logger))
			r.Get("/locations/cities", citiesHandler(svc.Locations, logger))

			// Operational summary
			r.Get("/ops/snapshot", opsSnapshotHandler(metrics))
		})
	})

	return r
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func opsSnapshotHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetSnapshot())
	}
}

package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avquote/backend/internal/handlers"
	"github.com/avquote/backend/internal/httpx"
	"github.com/avquote/backend/internal/models"
	"github.com/avquote/backend/internal/services"
	"github.com/avquote/backend/internal/shelf"
	"github.com/avquote/backend/internal/store"
)

// Options carries the collaborators the router wires into handlers.
// Shelf may be nil; the affected endpoints degrade or refuse per their
// own contracts.
type Options struct {
	Store           store.Store
	Shelf           *shelf.Client
	Notifier        *services.Notifier
	FallbackWebhook string
}

// New constructs the root http.Handler with all routes and middlewares.
func New(opts Options) http.Handler {
	mux := http.NewServeMux()

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		// Round-trip the store so a broken data dir or database shows up
		// as degraded instead of a healthy lie.
		var settings models.Settings
		if err := opts.Store.Load(r.Context(), store.CollectionSettings, &settings); err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	eh := handlers.NewEquipmentHandler(opts.Store, opts.Shelf)
	mux.HandleFunc("GET /api/equipment", eh.List)
	mux.HandleFunc("POST /api/equipment", eh.Create)
	mux.HandleFunc("GET /api/equipment/{id}", eh.Get)
	mux.HandleFunc("PUT /api/equipment/{id}", eh.Update)
	mux.HandleFunc("DELETE /api/equipment/{id}", eh.Delete)

	qh := handlers.NewQuoteHandler(opts.Store)
	mux.HandleFunc("GET /api/quotes", qh.List)
	mux.HandleFunc("POST /api/quotes", qh.Create)
	mux.HandleFunc("GET /api/quotes/{id}", qh.Get)
	mux.HandleFunc("PUT /api/quotes/{id}", qh.Update)
	mux.HandleFunc("DELETE /api/quotes/{id}", qh.Delete)

	bookingSvc := services.NewBookingService(opts.Store, opts.Shelf, opts.Notifier, opts.FallbackWebhook)
	bh := handlers.NewBookingHandler(bookingSvc)
	mux.HandleFunc("POST /api/quotes/{id}/book", bh.Book)

	wh := handlers.NewWarehouseHandler(services.NewWarehouseService(opts.Store))
	mux.HandleFunc("POST /api/quotes/{id}/pack", wh.Toggle)

	lh := handlers.NewLeadHandler(opts.Store)
	mux.HandleFunc("GET /api/leads", lh.List)
	mux.HandleFunc("POST /api/leads", lh.Create)
	mux.HandleFunc("PUT /api/leads", lh.UpdateStatus)

	ch := handlers.NewCrewHandler(opts.Store)
	mux.HandleFunc("GET /api/crew", ch.List)
	mux.HandleFunc("POST /api/crew", ch.Create)
	mux.HandleFunc("DELETE /api/crew/{id}", ch.Delete)

	sh := handlers.NewSettingsHandler(opts.Store)
	mux.HandleFunc("GET /api/settings", sh.Get)
	mux.HandleFunc("POST /api/settings", sh.Save)

	cph := handlers.NewCopilotHandler()
	mux.HandleFunc("POST /api/copilot/parse", cph.Parse)

	dh := handlers.NewDebugHandler(opts.Shelf)
	mux.HandleFunc("GET /api/debug/schema", dh.Schema)
	//revive:enable:unused-parameter

	return withRequestLogging(withMetrics(mux))
}

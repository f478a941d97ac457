package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bahanajar/sitta-backend/api/controllers"
	stockcontrollers "github.com/bahanajar/sitta-backend/api/controllers/stock"
	trackingcontrollers "github.com/bahanajar/sitta-backend/api/controllers/tracking"
	"github.com/bahanajar/sitta-backend/api/middleware"
	"github.com/bahanajar/sitta-backend/internal/session"
	"github.com/bahanajar/sitta-backend/pkg/config"
	"github.com/bahanajar/sitta-backend/pkg/format"
	"github.com/bahanajar/sitta-backend/pkg/logger"
	"github.com/bahanajar/sitta-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sess *session.Session,
	ops *metrics.OperationMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSAllowedOrigins),
	)

	display := format.Display{
		Separator: cfg.Locale.ThousandsSeparator,
		Locale:    cfg.Locale.DateLocale,
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, sess, logg))
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reference", controllers.Reference(sess, logg))

		r.Route("/stock", func(r chi.Router) {
			r.Get("/", stockcontrollers.List(sess, display, logg))
			r.Post("/", stockcontrollers.Add(sess, display, ops, logg))
			r.Delete("/form", stockcontrollers.CancelAdd(sess, display, logg))
			r.Put("/view", stockcontrollers.UpdateView(sess, display, logg))
			r.Delete("/view", stockcontrollers.ResetView(sess, display, logg))
			r.Post("/{code}/edit", stockcontrollers.StartEdit(sess, display, logg))
			r.Put("/edit", stockcontrollers.SaveEdit(sess, display, ops, logg))
			r.Delete("/edit", stockcontrollers.CancelEdit(sess, display, logg))
		})

		r.Route("/tracking", func(r chi.Router) {
			r.Get("/", trackingcontrollers.List(sess, display, logg))
			r.Post("/", trackingcontrollers.Create(sess, display, ops, logg))
			r.Get("/next-number", trackingcontrollers.NextNumber(sess, logg))
			r.Get("/form", trackingcontrollers.Form(sess, display, logg))
			r.Put("/form", trackingcontrollers.UpdateForm(sess, display, logg))
			r.Delete("/form", trackingcontrollers.CancelForm(sess, display, logg))
			r.Get("/{number}", trackingcontrollers.Get(sess, display, logg))
		})
	})

	return r
}

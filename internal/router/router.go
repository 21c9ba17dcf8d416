package router

import (
	"net/http"

	mem "vetclinic/internal/adapters/storage/memory"
	pg "vetclinic/internal/adapters/storage/postgres"
	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/domain/owners"
	"vetclinic/internal/domain/pets"
	"vetclinic/internal/domain/stats"
	"vetclinic/internal/middleware"
	"vetclinic/internal/platform/httpx"
	"vetclinic/internal/platform/logger"
	"vetclinic/internal/platform/validation"

	_ "vetclinic/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const metricsNamespace = "vetclinic"

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, el store in-memory.
	DB *pg.DB

	// Store in-memory a usar cuando DB es nil. Si también es nil se crea uno.
	Memory *mem.Store

	Logger logger.Logger // nil => Nop

	// Registry para /metrics. nil => uno nuevo con los collectors de Go y proceso.
	Registry *prometheus.Registry

	CORSAllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.Recover)
	r.Use(middleware.AccessLog)
	r.Use(middleware.NewMetrics(reg, metricsNamespace).Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", rootHandler)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		ownerRepo       owners.Repository
		petRepo         pets.Repository
		appointmentRepo appointments.Repository
		statsRepo       stats.Repository
	)

	if opts.DB != nil {
		ownerRepo = pg.NewOwnersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		appointmentRepo = pg.NewAppointmentsRepo(opts.DB)
		statsRepo = pg.NewStatsRepo(opts.DB)

		reg.MustRegister(collectors.NewDBStatsCollector(opts.DB.SQL(), metricsNamespace))
	} else {
		store := opts.Memory
		if store == nil {
			store = mem.NewStore()
		}
		ownerRepo = store.Owners()
		petRepo = store.Pets()
		appointmentRepo = store.Appointments()
		statsRepo = store.Stats()
	}

	v := validation.New()

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo, v)
	petsSvc := pets.NewService(petRepo)
	appointmentsSvc := appointments.NewService(appointmentRepo)
	statsSvc := stats.NewService(statsRepo)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc, v)
	pets.RegisterRoutes(r, petsSvc, v)
	appointments.RegisterRoutes(r, appointmentsSvc, v)
	stats.RegisterRoutes(r, statsSvc)

	return r
}

type rootResponse struct {
	Status string `json:"estado"`
	Docs   string `json:"documentacion"`
}

// rootHandler godoc
// @Summary Estado del servicio
// @Tags sistema
// @Produce json
// @Success 200 {object} rootResponse
// @Router / [get]
func rootHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, rootResponse{
		Status: "✅ funcionando",
		Docs:   "/swagger/index.html",
	})
}

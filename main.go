package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/blogem/workout-tracker/authenticator"
	"github.com/blogem/workout-tracker/config"
	"github.com/blogem/workout-tracker/confirmgate"
	"github.com/blogem/workout-tracker/controllers"
	"github.com/blogem/workout-tracker/database"
	"github.com/blogem/workout-tracker/metrics"
	authmiddleware "github.com/blogem/workout-tracker/middleware"
	"github.com/blogem/workout-tracker/repositories"
	"github.com/blogem/workout-tracker/services"
	"github.com/blogem/workout-tracker/web"
)

func main() {
	// Load .env (when present) and the environment
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ConfigureLogging()

	// Initialize database
	db, err := database.InitializeDatabase(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	tokens := confirmgate.NewMemoryTokenStore(cfg.ConfirmTTL)
	r, err := newServer(context.Background(), cfg, db, tokens, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		logrus.Fatalf("Failed to setup server: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"database": cfg.DatabasePath,
		"oidc":     cfg.OIDC.Enabled(),
	}).Info("Workout Tracker starting")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logrus.Fatal(srv.ListenAndServe())
}

// newServer wires repositories, services, the confirm guard and controllers into a router
func newServer(ctx context.Context, cfg *config.Config, db *sql.DB, tokens confirmgate.TokenStore, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*chi.Mux, error) {
	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, cfg.BcryptCost)
	m := metrics.New(reg)

	registry, err := confirmgate.NewRegistry(confirmgate.DefaultActions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to register guarded actions: %w", err)
	}
	binder := confirmgate.NewBinder(registry, tokens)

	var provider authenticator.Provider
	if cfg.OIDC.Enabled() {
		provider, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDC.Domain,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			CallbackURL:  cfg.OIDC.CallbackURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenID Connect provider: %w", err)
		}
	}

	ctrl := controllers.NewControllers(srvs, binder, m, provider)
	guard := authmiddleware.NewConfirmGuard(
		binder,
		ctrl.Confirm.Prompt,
		authmiddleware.WithConfirmObserver(m),
		authmiddleware.WithFallback("/workouts"),
	)

	return setupRouter(cfg, ctrl, guard, repos.Audit, m, gatherer)
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, guard *authmiddleware.ConfirmGuard, audit repositories.AuditRepository, m *metrics.Metrics, gatherer prometheus.Gatherer) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logrus.StandardLogger(), NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))
	r.Use(authmiddleware.RequestMetrics(m))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "workout_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     cfg.SessionLifetime,
		Maxlifetime:    cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static files: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Dashboard.Index) // Landing page, or redirect to the dashboard when signed in
	r.Get("/login", ctrl.Auth.ShowLogin)
	r.Post("/login", ctrl.Auth.Login)
	r.Get("/register", ctrl.Auth.ShowRegister)
	r.Post("/register", ctrl.Auth.Register)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/login/oidc", ctrl.Auth.OIDCLogin)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "workout-tracker"}`)
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)
		r.Use(authmiddleware.AuditLogger(audit))

		r.Get("/dashboard", ctrl.Dashboard.Dashboard)

		r.Route("/workouts", func(r chi.Router) {
			r.Get("/", ctrl.Workouts.Index)
			r.Post("/", ctrl.Workouts.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", ctrl.Workouts.Show)
				r.With(guard.Require(confirmgate.EndWorkout)).Post("/end", ctrl.Workouts.End)
				r.With(guard.Require(confirmgate.DeleteWorkout)).Post("/delete", ctrl.Workouts.Delete)

				// Exercise routes
				r.Post("/exercises", ctrl.Workouts.AddExercise)
				r.With(guard.Require(confirmgate.DeleteExercise)).Post("/exercises/{exerciseID}/delete", ctrl.Workouts.DeleteExercise)
			})
		})
	})

	return r, nil
}

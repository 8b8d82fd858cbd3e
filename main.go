package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	auth "Osdag/internal/auth"
	analysis "Osdag/internal/calc/analysis"
	deflection "Osdag/internal/calc/deflection"
	dispatch "Osdag/internal/calc/dispatch"
	loads "Osdag/internal/calc/loads"
	material "Osdag/internal/calc/material"
	moment "Osdag/internal/calc/moment"
	batch "Osdag/internal/calc/premium/batch"
	importer "Osdag/internal/calc/premium/importer"
	report "Osdag/internal/calc/report"
	safety "Osdag/internal/calc/safety"
	shear "Osdag/internal/calc/shear"
	utilization "Osdag/internal/calc/utilization"
	config "Osdag/internal/config"
	metrics "Osdag/internal/metrics"
)

var wg sync.WaitGroup

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

func HandleList(router *mux.Router, cfg *config.Config, reg *prometheus.Registry) {
	m := metrics.New(reg)
	router.Handle("/metrics", metrics.Handler(reg)).Methods("GET")

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit.Rate), cfg.RateLimit.Burst)
	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	calcH := &dispatch.Handler{Metrics: m}
	api.HandleFunc("/calculate", calcH.Calculate).Methods("POST")
	api.HandleFunc("/complete-analysis", calcH.CompleteAnalysis).Methods("POST")
	api.HandleFunc("/steel-grades", calcH.SteelGrades).Methods("GET")
	api.HandleFunc("/load-combinations", calcH.LoadCombinations).Methods("GET")
	api.HandleFunc("/deflection-limits", calcH.DeflectionLimits).Methods("GET")
	api.HandleFunc("/calculation-types", calcH.CalculationTypes).Methods("GET")

	tools := api.PathPrefix("/tools").Subrouter()
	if cfg.Auth.Enabled {
		authEnv := &auth.Authenv{JWTkey: []byte(cfg.Auth.TokenKey), PasswordHash: []byte(cfg.Auth.PasswordHash)}
		api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
		tools.Use(authEnv.AuthMiddleware)
	}

	loadsH := &loads.Handler{}
	safetyH := &safety.Handler{}
	utilizationH := &utilization.Handler{}
	momentH := &moment.Handler{}
	shearH := &shear.Handler{}
	deflectionH := &deflection.Handler{}
	materialH := &material.Handler{}
	analysisH := &analysis.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	tools.HandleFunc("/loads/calc", loadsH.Calc).Methods("POST")
	tools.HandleFunc("/safety/calc", safetyH.Calc).Methods("POST")
	tools.HandleFunc("/utilization/calc", utilizationH.Calc).Methods("POST")
	tools.HandleFunc("/moment/calc", momentH.Calc).Methods("POST")
	tools.HandleFunc("/shear/calc", shearH.Calc).Methods("POST")
	tools.HandleFunc("/deflection/calc", deflectionH.Calc).Methods("POST")
	tools.HandleFunc("/material/calc", materialH.Calc).Methods("POST")
	tools.HandleFunc("/analysis/calc", analysisH.Calc).Methods("POST")
	tools.HandleFunc("/batch", batchH.Calc).Methods("POST")
	tools.HandleFunc("/import", importH.Import).Methods("POST")
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	if cfg.Server.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir)))
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func main() {
	configPath := flag.String("config", os.Getenv("OSDAG_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := mux.NewRouter()
	HandleList(router, cfg, reg)
	handler := logRequests(CORS(router))

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("starting server", "addr", cfg.Server.Addr, "tls", cfg.Server.TLS(), "auth", cfg.Auth.Enabled)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.Server.TLS() {
			err = server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, closing active connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
		os.Exit(1)
	}
	wg.Wait()
	slog.Info("server stopped")
}

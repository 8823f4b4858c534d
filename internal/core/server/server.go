// Package server wires the rendering configuration engine behind its
// HTTP facade.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rastermaps/renderconfig/internal/cache"
	"github.com/rastermaps/renderconfig/internal/cache/keys"
	"github.com/rastermaps/renderconfig/internal/core/config"
	"github.com/rastermaps/renderconfig/internal/core/observability"
	"github.com/rastermaps/renderconfig/internal/core/router"
	"github.com/rastermaps/renderconfig/internal/health"
	imw "github.com/rastermaps/renderconfig/internal/middleware"
	"github.com/rastermaps/renderconfig/internal/render"
)

type Deps struct {
	Engine *render.Engine
	Cache  cache.Interface // nil disables descriptor caching
}

func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, deps Deps) error {
	if deps.Engine == nil {
		return errors.New("server: engine is required")
	}

	r := chi.NewRouter()
	r.Use(imw.Recover())
	r.Use(imw.RequestID())
	r.Use(imw.Logging(logger))
	r.Use(imw.CORS())

	r.Get("/healthz", health.Liveness())
	r.Get("/readyz", health.Readiness(depsReporter{deps}))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/layer", handleLayer(cfg, logger, deps))
	r.Post("/mosaic", handleMosaic(logger, deps))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

func handleLayer(cfg config.Config, logger *slog.Logger, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/layer", sw.code, time.Since(start).Seconds())
		}()

		req, err := router.ParseLayerRequest(r)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			return
		}

		key := keys.Descriptor(req.Collection, req.URL, req.Metadata, req.Flags, req.Opacity)
		if deps.Cache != nil {
			opCtx, cancel := context.WithTimeout(r.Context(), cfg.CacheOpTimeout)
			cached, ok, err := deps.Cache.Get(opCtx, key)
			cancel()
			if err != nil {
				// cache trouble is never a reason to fail a render
				logger.Warn("descriptor cache get failed", "err", err)
			} else if ok {
				writeJSONRaw(sw, cached)
				return
			}
		}

		desc := deps.Engine.Layer(req.Collection, render.BuildInput{
			URL:      req.URL,
			Metadata: req.Metadata,
			Bounds:   req.Bounds,
			Flags:    req.Flags,
			Opacity:  req.Opacity,
		})

		body, err := json.Marshal(desc)
		if err != nil {
			http.Error(sw, "encode descriptor", http.StatusInternalServerError)
			return
		}
		if deps.Cache != nil {
			opCtx, cancel := context.WithTimeout(r.Context(), cfg.CacheOpTimeout)
			if err := deps.Cache.Set(opCtx, key, body, cfg.CacheTTL); err != nil {
				logger.Warn("descriptor cache set failed", "err", err)
			}
			cancel()
		}
		writeJSONRaw(sw, body)
	}
}

func handleMosaic(logger *slog.Logger, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			observability.ObserveHTTP(r.Method, "/mosaic", sw.code, time.Since(start).Seconds())
		}()

		req, err := router.ParseMosaicRequest(r)
		if err != nil {
			http.Error(sw, err.Error(), http.StatusBadRequest)
			return
		}

		res := deps.Engine.Mosaic(req.Collection, req.Items)
		if res.ErrorCount > 0 {
			logger.Warn("mosaic degraded",
				"collection", req.Collection,
				"items", len(req.Items),
				"errors", res.ErrorCount)
		}

		body, err := json.Marshal(res)
		if err != nil {
			http.Error(sw, "encode result", http.StatusInternalServerError)
			return
		}
		writeJSONRaw(sw, body)
	}
}

type depsReporter struct {
	deps Deps
}

func (d depsReporter) Ready() (bool, []string) {
	subs := []string{"engine"}
	if d.deps.Cache != nil {
		subs = append(subs, "cache")
	}
	return d.deps.Engine != nil, subs
}

func writeJSONRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(body)
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

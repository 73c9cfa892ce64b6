// cmd/web/main.go
//
// Swimspot – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (system-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load and validate config (YAML overlaid with SWIMSPOT_* env vars).
//
//  4. Register the built-in form definitions.
//
//  5. Build the backend API clients and the session cache, then bootstrap
//     the session from the persisted credential.
//
//  6. Open the optional GeoLite2 database for the request-info middleware.
//
//  7. Mount /metrics, the security and enrichment middleware, and the page
//     router; serve with hardened timeouts.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanizio/swimspot/internal/api"
	"github.com/yanizio/swimspot/internal/config"
	"github.com/yanizio/swimspot/internal/form"
	"github.com/yanizio/swimspot/internal/logger"
	"github.com/yanizio/swimspot/internal/middleware"
	"github.com/yanizio/swimspot/internal/requestinfo"
	"github.com/yanizio/swimspot/internal/server"
	"github.com/yanizio/swimspot/internal/session"
	"github.com/yanizio/swimspot/internal/view"
	"github.com/yanizio/swimspot/internal/web"
)

const serverEnvPath = "/usr/local/etc/swimspot/global.env"

// loadEnv prefers the system-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Config ──────────────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalw("load config", "error", err)
	}

	//
	// ── 2.  Form definitions ────────────────────────────────────────────
	//
	if err := form.RegisterBuiltin(); err != nil {
		logOut.Fatalw("register forms", "error", err)
	}

	//
	// ── 3.  Backend clients and session ─────────────────────────────────
	//
	client := api.NewClient(cfg.Backend.BaseURL, logOut)
	authc := api.NewAuthClient(client)
	places := api.NewPlaceClient(client)
	ratings := api.NewRatingClient(client)
	comments := api.NewCommentClient(client)

	store, err := session.NewTokenStore(cfg.Session.StateDir)
	if err != nil {
		logOut.Fatalw("open session store", "dir", cfg.Session.StateDir, "error", err)
	}
	sess := session.New(authc, store, logOut)

	bootCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	sess.Bootstrap(bootCtx)
	cancel()

	//
	// ── 4.  Geo enrichment (optional) ───────────────────────────────────
	//
	if err := requestinfo.InitGeo(cfg.Geo.DBPath); err != nil {
		logOut.Warnw("geo database unavailable, lookups disabled",
			"path", cfg.Geo.DBPath, "error", err)
	}

	//
	// ── 5.  Views and routes ────────────────────────────────────────────
	//
	views, err := view.New(logOut)
	if err != nil {
		logOut.Fatalw("parse templates", "error", err)
	}
	handlers := web.New(logOut, views, sess, places, ratings, comments)

	r := chi.NewRouter()
	r.Use(middleware.Security)
	r.Use(requestinfo.Enrich)
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", handlers.Routes())

	var root http.Handler = r
	if cfg.HTTP.ForceHTTPS {
		root = middleware.ForceHTTPS(root)
	}

	//
	// ── 6.  Serve ───────────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, root)
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logOut.Fatalw("server exited", "error", err)
	}
}

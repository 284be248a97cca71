package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := loadConfig()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// The wasm client reads its backend base URL from the handler
	// environment. In proxy mode it talks same-origin under /api and
	// this server forwards to the real backend.
	clientAPIURL := cfg.APIURL
	if cfg.ProxyAPI {
		clientAPIURL = "/api"
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	if cfg.ProxyAPI {
		proxy, err := apiProxy(cfg.APIURL)
		if err != nil {
			log.Fatal().Err(err).Str("api_url", cfg.APIURL).Msg("Invalid CRM API URL")
		}
		r.Handle("/api/*", proxy)
		log.Info().Str("api_url", cfg.APIURL).Msg("Proxying CRM API under /api")
	}

	r.Handle("/*", &app.Handler{
		Name:        "HiClinic CRM",
		Title:       "HiClinic CRM",
		Description: "Lightweight CRM UI for the HiClinic backend",
		Env: map[string]string{
			"CRM_API_URL": clientAPIURL,
		},
		Styles: []string{"/web/app.css"},
	})

	log.Info().Str("addr", cfg.Addr).Str("api_url", cfg.APIURL).Msg("Starting CRM UI server")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/commissions/internal/http/carriers"
	"github.com/MrJamesThe3rd/commissions/internal/http/categories"
	"github.com/MrJamesThe3rd/commissions/internal/http/imports"
	"github.com/MrJamesThe3rd/commissions/internal/http/leaderboard"
	mw "github.com/MrJamesThe3rd/commissions/internal/http/middleware"
	"github.com/MrJamesThe3rd/commissions/internal/http/overrides"
	"github.com/MrJamesThe3rd/commissions/internal/http/transaction"
)

type Handlers struct {
	Imports      *imports.Handler
	Overrides    *overrides.Handler
	Transactions *transaction.Handler
	Categories   *categories.Handler
	Carriers     *carriers.Handler
	Leaderboard  *leaderboard.Handler
}

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.Actor(opts.JWTSecret))

		r.Route("/imports", h.Imports.Routes)

		r.Route("/overrides", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Overrides.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Transactions.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Categories.Routes(r)
		})

		r.Route("/carriers", h.Carriers.Routes)
		r.Route("/leaderboard", h.Leaderboard.Routes)
	})

	return router
}

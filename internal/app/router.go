package app

import (
	roundAPI "arena_backend/internal/api/round"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter маршруты раундов. auth защищает действия конкретного игрока.
func NewRouter(h *roundAPI.Handler, auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/stats", h.Stats)

	r.Route("/rounds", func(rr chi.Router) {
		rr.Get("/", h.List)
		rr.Post("/", h.Open)

		rr.Route("/{roundID}", func(rr chi.Router) {
			rr.Get("/", h.Get)
			rr.Get("/escrow", h.Escrow)
			rr.Put("/arena-size", h.SetArenaSize)
			rr.Post("/resolve", h.Resolve)
			rr.Post("/refund", h.Refund)

			rr.Route("/gamblers", func(gr chi.Router) {
				gr.Get("/{address}", h.Gambler)

				// Gambler endpoints
				gr.Group(func(pr chi.Router) {
					pr.Use(auth)
					pr.Post("/", h.Join)
					pr.Post("/{address}/lock", h.Lock)
					pr.Post("/{address}/lock-delayed", h.LockDelayed)
					pr.Post("/{address}/confirm-lock", h.ConfirmLock)
					pr.Post("/{address}/escrow-fee", h.EscrowFee)
					pr.Post("/{address}/move", h.Move)
					pr.Post("/{address}/vote", h.Vote)
				})
			})
		})
	})

	return r
}

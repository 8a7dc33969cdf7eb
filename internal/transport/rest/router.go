package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/officedash-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Domains   *DomainHandler
	Todos     *TodoHandler
	Notebook  *NotebookHandler
	Finance   *FinanceHandler
	Currency  *CurrencyHandler
	Dashboard *DashboardHandler
	Reminders *ReminderHandler
}

// NewRouter mounts health probes at the root and the JSON API under /api.
// expensive guards endpoints that reach out to the network (probe cycles,
// rate fetches, text generation); global wraps everything.
func NewRouter(h Handlers, expensive middleware.Middleware, global middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(global)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/domains", func(r chi.Router) {
			r.Get("/", h.Domains.List)
			r.Post("/", h.Domains.Create)
			r.Get("/totals", h.Domains.Totals)
			r.Get("/{id}", h.Domains.Get)
			r.Patch("/{id}", h.Domains.Update)
			r.Delete("/{id}", h.Domains.Delete)
			r.Post("/{id}/renew", h.Domains.Renew)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", h.Todos.List)
			r.Post("/", h.Todos.Create)
			r.Get("/{id}", h.Todos.Get)
			r.Patch("/{id}", h.Todos.Update)
			r.Delete("/{id}", h.Todos.Delete)
		})

		r.Route("/faults", func(r chi.Router) {
			r.Get("/", h.Notebook.ListFaults)
			r.Post("/", h.Notebook.CreateFault)
			r.Delete("/{id}", h.Notebook.DeleteFault)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.Finance.ListTransactions)
			r.Post("/", h.Finance.CreateTransaction)
			r.Get("/balance", h.Finance.Balance)
			r.Delete("/{id}", h.Finance.DeleteTransaction)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", h.Finance.ListSales)
			r.Post("/", h.Finance.CreateSale)
			r.Get("/totals", h.Finance.SalesTotals)
			r.Delete("/{id}", h.Finance.DeleteSale)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Finance.ListProjects)
			r.Post("/", h.Finance.CreateProject)
			r.Get("/shares", h.Finance.Shares)
			r.Delete("/{id}", h.Finance.DeleteProject)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.Notebook.Settings)
			r.Put("/note", h.Notebook.SaveNote)
			r.Delete("/ai-key", h.Reminders.ClearKey)
			r.With(expensive).Put("/ai-key", h.Reminders.SaveKey)
			r.With(expensive).Post("/ai-key/check", h.Reminders.CheckKey)
		})

		r.Route("/currency", func(r chi.Router) {
			r.Get("/", h.Currency.Status)
			r.Get("/convert", h.Currency.Convert)
			r.With(expensive).Post("/refresh", h.Currency.Refresh)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", h.Dashboard.Snapshot)
			r.With(expensive).Post("/refresh", h.Dashboard.Refresh)
			r.Post("/todos", h.Dashboard.AddTodo)
			r.Patch("/todos/{id}", h.Dashboard.SetTodoCompleted)
			r.Delete("/todos/{id}", h.Dashboard.DeleteTodo)
		})

		r.With(expensive).Post("/reminders/draft", h.Reminders.Draft)
	})

	return r
}

package router

import (
	"github.com/gofiber/fiber/v2"

	handlers "github.com/kunduaritra/Expense-Tracker/internal/http"
)

type Router struct {
	AuthHandler        *handlers.AuthHandler
	TransactionHandler *handlers.TransactionHandler
	AccountHandler     *handlers.AccountHandler
	GoalHandler        *handlers.GoalHandler
	CardHandler        *handlers.CardHandler
	ReminderHandler    *handlers.ReminderHandler
	BudgetHandler      *handlers.BudgetHandler
	InsightsHandler    *handlers.InsightsHandler
	SMSHandler         *handlers.SMSHandler
	ReportsHandler     *handlers.ReportsHandler
	AuthMW             fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	authLimit := RateLimitAuth()
	writeLimit := RateLimitWrite()

	app.Post("/api/auth/signup", authLimit, r.AuthHandler.Signup)
	app.Post("/api/auth/login", authLimit, r.AuthHandler.Login)
	app.Get("/api/me", r.AuthMW, r.AuthHandler.Me)

	api := app.Group("/api", r.AuthMW)

	api.Get("/transactions", r.TransactionHandler.List)
	api.Post("/transactions", writeLimit, r.TransactionHandler.Create)
	api.Patch("/transactions/:id", writeLimit, r.TransactionHandler.Update)
	api.Delete("/transactions/:id", writeLimit, r.TransactionHandler.Delete)

	api.Get("/accounts", r.AccountHandler.List)
	api.Post("/accounts", writeLimit, r.AccountHandler.Create)
	api.Patch("/accounts/:id", writeLimit, r.AccountHandler.Update)
	api.Delete("/accounts/:id", writeLimit, r.AccountHandler.Delete)

	api.Get("/goals", r.GoalHandler.List)
	api.Post("/goals", writeLimit, r.GoalHandler.Create)
	api.Patch("/goals/:id", writeLimit, r.GoalHandler.Update)
	api.Delete("/goals/:id", writeLimit, r.GoalHandler.Delete)
	api.Post("/goals/:id/contributions", writeLimit, r.GoalHandler.AddContribution)
	api.Patch("/goals/:id/contributions/:index", writeLimit, r.GoalHandler.EditContribution)
	api.Delete("/goals/:id/contributions/:index", writeLimit, r.GoalHandler.DeleteContribution)

	api.Get("/cards", r.CardHandler.List)
	api.Post("/cards", writeLimit, r.CardHandler.Create)
	api.Get("/cards/:id/outstanding", r.CardHandler.Outstanding)
	api.Post("/cards/:id/settle", writeLimit, r.CardHandler.Settle)
	api.Delete("/cards/:id", writeLimit, r.CardHandler.Delete)

	api.Get("/reminders", r.ReminderHandler.List)
	api.Post("/reminders", writeLimit, r.ReminderHandler.Create)
	api.Get("/reminders/:id/upcoming", r.ReminderHandler.Upcoming)
	api.Post("/reminders/:id/toggle", writeLimit, r.ReminderHandler.Toggle)
	api.Delete("/reminders/:id", writeLimit, r.ReminderHandler.Delete)

	api.Get("/budget", r.BudgetHandler.Get)
	api.Put("/budget", writeLimit, r.BudgetHandler.Set)

	api.Get("/insights/overview", r.InsightsHandler.Overview)
	api.Get("/insights/breakdown", r.InsightsHandler.Breakdown)
	api.Get("/insights/patterns", r.InsightsHandler.Patterns)
	api.Get("/insights/merchants", r.InsightsHandler.Merchants)
	api.Get("/insights/predictions", r.InsightsHandler.Predictions)
	api.Get("/insights/trend", r.InsightsHandler.Trend)

	api.Post("/sms/parse", r.SMSHandler.Parse)

	api.Post("/reports/statement", writeLimit, r.ReportsHandler.Generate)
	app.Get("/r/:token", r.ReportsHandler.Download)
}

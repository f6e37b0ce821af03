package main

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kunduaritra/Expense-Tracker/internal/auth"
	"github.com/kunduaritra/Expense-Tracker/internal/config"
	"github.com/kunduaritra/Expense-Tracker/internal/firebase"
	apphttp "github.com/kunduaritra/Expense-Tracker/internal/http"
	"github.com/kunduaritra/Expense-Tracker/internal/ledger"
	"github.com/kunduaritra/Expense-Tracker/internal/reports"
	"github.com/kunduaritra/Expense-Tracker/internal/router"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	store := firebase.NewStore(cfg.FirebaseDBURL, log)
	accounts := firebase.NewAuthClient(cfg.FirebaseAPIKey)

	var opts []ledger.Option
	if cfg.ReverseBalanceOnDelete {
		opts = append(opts, ledger.WithReverseBalanceOnDelete())
	}
	svc := ledger.NewService(store, log, opts...)

	reportStore := reports.NewStore(24 * time.Hour)
	secret := []byte(cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	r := &router.Router{
		AuthHandler:        &apphttp.AuthHandler{Accounts: accounts, Ledger: svc, Secret: secret},
		TransactionHandler: &apphttp.TransactionHandler{Ledger: svc},
		AccountHandler:     &apphttp.AccountHandler{Ledger: svc},
		GoalHandler:        &apphttp.GoalHandler{Ledger: svc},
		CardHandler:        &apphttp.CardHandler{Ledger: svc},
		ReminderHandler:    &apphttp.ReminderHandler{Ledger: svc},
		BudgetHandler:      &apphttp.BudgetHandler{Ledger: svc},
		InsightsHandler:    &apphttp.InsightsHandler{Ledger: svc},
		SMSHandler:         &apphttp.SMSHandler{},
		ReportsHandler:     &apphttp.ReportsHandler{Ledger: svc, Store: reportStore},
		AuthMW:             auth.Middleware(secret),
	}
	r.RegisterRoutes(app)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("X-Request-Id", reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

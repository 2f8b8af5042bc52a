package app

import (
	"fmt"
	"net/http"
	"net/url"

	_ "github.com/DIMO-Network/messenger-autoresponder/docs" // Import Swagger docs
	"github.com/DIMO-Network/messenger-autoresponder/internal/config"
	"github.com/DIMO-Network/messenger-autoresponder/internal/controllers/rulesync"
	"github.com/DIMO-Network/messenger-autoresponder/internal/controllers/webhook"
	"github.com/DIMO-Network/messenger-autoresponder/internal/metrics"
	"github.com/DIMO-Network/messenger-autoresponder/internal/services/messagesender"
	"github.com/DIMO-Network/messenger-autoresponder/internal/services/replydispatcher"
	"github.com/DIMO-Network/messenger-autoresponder/internal/services/rulestore"
	"github.com/DIMO-Network/messenger-autoresponder/internal/services/seenmessages"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// Servers holds the HTTP app and the background components that must be drained on shutdown.
type Servers struct {
	App       *fiber.App
	Store     *rulestore.Store
	Responder *replydispatcher.Dispatcher
}

// CreateServers loads the rules and builds every component of the service.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*Servers, error) {
	if _, err := url.ParseRequestURI(settings.GraphAPIURL); err != nil {
		return nil, fmt.Errorf("invalid graph api url %q: %w", settings.GraphAPIURL, err)
	}

	store := rulestore.New(settings.RulesFilePath, &logger)
	if _, err := store.Load(); err != nil {
		// Unreadable or malformed files degrade to an empty rule set until the next sync overwrites them.
		logger.Error().Err(err).Str("path", settings.RulesFilePath).Msg("Failed to load rules, starting with empty rules")
	}
	metrics.ActiveRules.Set(float64(len(store.Rules())))

	sender := messagesender.NewSender(&http.Client{Timeout: settings.SendTimeout}, settings.GraphAPIURL, settings.PageAccessToken)
	responder := replydispatcher.New(sender, settings.SendTimeout, &logger)
	seen := seenmessages.New(settings.MessageDedupeTTL, 2*settings.MessageDedupeTTL)

	app := CreateFiberApp(logger, store, responder, seen, settings)
	return &Servers{
		App:       app,
		Store:     store,
		Responder: responder,
	}, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, store *rulestore.Store,
	responder webhook.Replier,
	seen webhook.MessageDeduper,
	settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Messenger Auto-Responder API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Messenger Auto-Responder API!")
	})

	webhookController := webhook.NewWebhookController(store, responder, seen, settings.VerifyToken)
	rulesController := rulesync.NewRulesController(store, settings.SyncPassword)
	logger.Info().Msg("Registering routes...")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	// Messenger webhook
	app.Get("/webhook", webhookController.VerifyWebhook)
	app.Post("/webhook", webhookController.ReceiveEvents)

	// Dashboard sync
	app.Post("/update-rules", rulesController.UpdateRules)

	return app
}

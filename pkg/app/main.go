package app

import (
	"github.com/answerking/answerking-api/pkg/cache"
	"github.com/answerking/answerking-api/pkg/config"
	"github.com/answerking/answerking-api/pkg/database"
	"github.com/answerking/answerking-api/pkg/events"
	"github.com/answerking/answerking-api/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each bounded context's services.New during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "order created", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
// EventBus and Redis may be nil in tests; repositories and services skip
// publishing and caching when they are.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}

// Package bootstrap assembles the store, repositories and services from a
// configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"aaquestions/config"
	"aaquestions/internal/database"
	"aaquestions/internal/observability"
	"aaquestions/internal/repository"
	"aaquestions/internal/service"
)

// Runtime owns the single database store and everything built on it.
type Runtime struct {
	Config *config.Config
	Store  *database.Store
	Logger *observability.Logger

	Repositories *repository.Repositories
	Questions    *service.QuestionService
	Replies      *service.ReplyService
	Users        *service.UserService

	shutdownTracing func(context.Context) error
}

// InitRuntime wires logging, tracing, the store and the services. The
// database is not opened until the first query.
func InitRuntime(cfg *config.Config) (*Runtime, error) {
	if cfg == nil {
		return nil, errors.New("bootstrap: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := observability.NewLogger(os.Stdout, cfg.LogLevel)
	observability.SetGlobalLogger(logger)

	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  cfg.ServiceName,
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplerRatio: cfg.TracingSamplerRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing initialization failed: %w", err)
	}

	store := database.NewStore(cfg, logger)
	repos := repository.NewRepositories(store)

	logger.Info("Runtime initialized",
		slog.String("driver", cfg.DBDriver),
		slog.String("env", cfg.Env),
		slog.Bool("tracing", cfg.TracingEnabled),
	)

	return &Runtime{
		Config:       cfg,
		Store:        store,
		Logger:       logger,
		Repositories: repos,
		Questions: service.NewQuestionService(
			repos.Users, repos.Questions, repos.Replies, repos.QuestionFollows, repos.QuestionLikes,
		),
		Replies: service.NewReplyService(repos.Users, repos.Questions, repos.Replies),
		Users: service.NewUserService(
			repos.Users, repos.Questions, repos.Replies, repos.QuestionFollows, repos.QuestionLikes,
		),
		shutdownTracing: shutdown,
	}, nil
}

// Close flushes pending spans and closes the store.
func (r *Runtime) Close(ctx context.Context) error {
	var errs []error
	if r.shutdownTracing != nil {
		if err := r.shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracing shutdown: %w", err))
		}
	}
	if err := r.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store close: %w", err))
	}
	return errors.Join(errs...)
}

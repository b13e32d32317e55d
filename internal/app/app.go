package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charlescharles/words/internal/adapter/provider/wordsapi"
	"github.com/charlescharles/words/internal/config"
	"github.com/charlescharles/words/internal/domain"
)

// App wires the words lookup pipeline: configuration, request parsing, and
// the remote words API client.
type App struct {
	baseURL string
}

// New creates an App that talks to the production words API.
func New() *App { return &App{} }

// NewWithURL creates an App that talks to a custom words API base URL (for testing).
func NewWithURL(baseURL string) *App { return &App{baseURL: baseURL} }

// Run executes a single lookup invocation and writes exactly one line to out:
// the comma-and-space-joined result words on success, or the fixed failure
// message. Every failure is terminal; there are no retries.
func (a *App) Run(ctx context.Context, args []string, out io.Writer) {
	words, err := a.execute(ctx, args)
	if err != nil {
		fmt.Fprintln(out, domain.UserMessage(err))
		return
	}
	fmt.Fprintln(out, strings.Join(words, ", "))
}

// execute walks the pipeline: load config, parse the request, dispatch the
// lookup. The first failure short-circuits, carrying one of the domain
// sentinels.
func (a *App) execute(ctx context.Context, args []string) ([]string, error) {
	cfg, err := config.Load()
	if err != nil {
		// The configured logger needs the config; fall back to the default.
		slog.ErrorContext(ctx, "load config failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidConfig)
	}

	logger := NewLogger(cfg.Log)

	req, err := ParseRequest(args)
	if err != nil {
		logger.DebugContext(ctx, "parse request failed", slog.String("error", err.Error()))
		return nil, err
	}

	logger.DebugContext(ctx, "starting lookup",
		slog.String("version", BuildVersion()),
		slog.String("relation", req.Relation.String()),
		slog.String("word", req.Word),
	)

	client := wordsapi.NewClient(cfg.API.AccessToken, logger)
	if a.baseURL != "" {
		client = wordsapi.NewClientWithURL(a.baseURL, cfg.API.AccessToken, logger)
	}

	switch req.Relation {
	case domain.RelationSynonyms:
		return client.Synonyms(ctx, req.Word)
	case domain.RelationAntonyms:
		return client.Antonyms(ctx, req.Word)
	default:
		return nil, fmt.Errorf("unsupported relation %q: %w", req.Relation, domain.ErrInvalidArgs)
	}
}

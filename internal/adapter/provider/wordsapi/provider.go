package wordsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/charlescharles/words/internal/domain"
)

const defaultBaseURL = "https://api.words.dev/v1/words"

// Client fetches lexical relations from the words API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client for the production words API. The underlying
// HTTP client carries no explicit timeout; a lookup blocks until the
// transport gives up or the context ends.
func NewClient(accessToken string, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, accessToken, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, accessToken string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
		log:         logger.With("adapter", "wordsapi"),
	}
}

// Synonyms fetches the synonyms of word, in the order the service returns them.
func (c *Client) Synonyms(ctx context.Context, word string) ([]string, error) {
	return c.related(ctx, domain.RelationSynonyms, word)
}

// Antonyms fetches the antonyms of word, in the order the service returns them.
func (c *Client) Antonyms(ctx context.Context, word string) ([]string, error) {
	return c.related(ctx, domain.RelationAntonyms, word)
}

// related performs one GET against <base>/<word>/<relation> and extracts the
// matching word list. Every failure (request construction, transport, bad
// status, unreadable body, undecodable JSON, missing field, empty list) is
// folded into domain.ErrNoResults; only the log tells them apart.
func (c *Client) related(ctx context.Context, relation domain.Relation, word string) ([]string, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(word) + "/" + relation.String()

	c.log.DebugContext(ctx, "words api request",
		slog.String("word", word),
		slog.String("relation", relation.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, c.fold(ctx, relation, word, fmt.Errorf("create request: %w", err))
	}

	q := req.URL.Query()
	q.Set("accessToken", c.accessToken)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fold(ctx, relation, word, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.fold(ctx, relation, word, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fold(ctx, relation, word, fmt.Errorf("read body: %w", err))
	}

	var rel apiRelations
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, c.fold(ctx, relation, word, fmt.Errorf("decode json: %w", err))
	}

	words := rel.listFor(relation)
	if len(words) == 0 {
		c.log.DebugContext(ctx, "words api returned no results",
			slog.String("word", word),
			slog.String("relation", relation.String()),
		)
		return nil, fmt.Errorf("wordsapi: no %s for %q: %w", relation, word, domain.ErrNoResults)
	}

	c.log.DebugContext(ctx, "words api response",
		slog.String("word", word),
		slog.String("relation", relation.String()),
		slog.Int("count", len(words)),
	)

	return words, nil
}

// fold maps a lookup failure to the uniform no-results error; the cause
// appears only in the log.
func (c *Client) fold(ctx context.Context, relation domain.Relation, word string, cause error) error {
	c.log.ErrorContext(ctx, "words api lookup failed",
		slog.String("word", word),
		slog.String("relation", relation.String()),
		slog.String("error", cause.Error()),
	)
	return fmt.Errorf("wordsapi: %s %q: %w", relation, word, domain.ErrNoResults)
}

// Package artifacts is a client for the ArtifactsMMO HTTP API.
//
// A Client authenticates every request with a bearer token and exposes the
// account-wide surface (characters, bank, grand exchange, game data). Calling
// Client.Character binds the client to one in-game character and unlocks the
// action endpoints; actions for the same character are automatically paced so
// a request is never sent while the server-imposed cooldown is still running.
// Handles for different characters never wait on each other.
package artifacts

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.artifactsmmo.com"

// Client talks to the ArtifactsMMO API on behalf of one account.
//
// The zero value is not usable; construct with NewClient. A single Client is
// safe for concurrent use, including driving several characters from separate
// goroutines.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *zap.Logger
	clock   func() time.Time

	cooldowns *cooldownTable

	items        catalogCache[Item]
	maps         catalogCache[MapTile]
	monsters     catalogCache[Monster]
	resources    catalogCache[Resource]
	tasks        catalogCache[TaskInfo]
	taskRewards  catalogCache[TaskReward]
	achievements catalogCache[Achievement]
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for test servers.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if v := strings.TrimSpace(url); v != "" {
			c.baseURL = v
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout sets a per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpc.Timeout = timeout
		}
	}
}

// WithClock overrides the time source used for cooldown accounting.
func WithClock(clock func() time.Time) Option {
	return func(c *Client) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewClient returns a client authenticating with the given bearer token.
func NewClient(token string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("artifacts: api token is required")
	}

	c := &Client{
		baseURL: defaultBaseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  zap.NewNop(),
		clock:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}

	c.cooldowns = newCooldownTable(c.clock)
	c.cooldowns.logger = c.logger
	return c, nil
}

// Character returns a handle bound to the named in-game character. Handles
// share the client's token and cooldown table; many handles may coexist.
func (c *Client) Character(name string) *CharacterClient {
	return &CharacterClient{
		client: c,
		name:   name,
		logger: c.logger.With(zap.String("char", name)),
	}
}

// CharacterClient addresses the action endpoints of a single character.
//
// It keeps the most recent character snapshot returned by the server; the
// snapshot is refreshed after every action because action responses embed the
// updated character.
type CharacterClient struct {
	client *Client
	name   string
	logger *zap.Logger

	mu   sync.RWMutex
	char *Character
}

// Name returns the character name the handle is bound to.
func (h *CharacterClient) Name() string { return h.name }

// Snapshot returns the last character state seen by this handle, or nil if no
// request has completed yet. Call Refresh to fetch one explicitly.
func (h *CharacterClient) Snapshot() *Character {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.char
}

// Refresh fetches the character from the server and seeds the cooldown table
// from its cooldown expiry, so the first action after a restart still waits.
func (h *CharacterClient) Refresh(ctx context.Context) (*Character, error) {
	char, err := h.client.GetCharacter(ctx, h.name)
	if err != nil {
		return nil, err
	}
	h.setCharacter(char)
	h.client.cooldowns.record(h.name, char.CooldownExpiration.Time)
	return char, nil
}

func (h *CharacterClient) setCharacter(char *Character) {
	if char == nil {
		return
	}
	h.mu.Lock()
	h.char = char
	h.mu.Unlock()
}

// Package app provides the application context and dependency management
// for the rollcall CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fieldops/rollcall"
	"github.com/fieldops/rollcall/internal/cmd/globals"
	"github.com/fieldops/rollcall/pkg/constants"
	"github.com/fieldops/rollcall/pkg/crm"
	"github.com/fieldops/rollcall/pkg/errors"
)

// App represents the rollcall application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// the reconciliation client, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Flag state bound by createRootCommand
	flags      *globals.Flags
	configFile string
	logLevel   string

	// Logger
	logger *zerolog.Logger

	// Reconciliation client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client rollcall.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Client returns the reconciliation client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (rollcall.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		client := a.client
		a.mu.RUnlock()
		return client, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	if err := a.checkConnection(); err != nil {
		return nil, err
	}

	client, err := rollcall.New(a.buildClientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = client
	return client, nil
}

// ClientWithOptions returns a new reconciliation client with custom options
// layered over the configured ones. This is useful for commands that need
// specific configurations different from the default app instance (e.g.,
// match with --threshold).
func (a *App) ClientWithOptions(opts ...rollcall.Option) (rollcall.Client, error) {
	if err := a.checkConnection(); err != nil {
		return nil, err
	}

	client, err := rollcall.New(append(a.buildClientOptions(), opts...)...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "with custom options", err)
	}
	return client, nil
}

// CRM returns the raw API client backing the reconciliation client.
// This is a convenience method for commands that talk to the live system
// directly instead of running a match.
func (a *App) CRM() (*crm.Client, error) {
	client, err := a.Client()
	if err != nil {
		return nil, err
	}
	return client.CRM(), nil
}

// checkConnection verifies the live-system connection settings before a
// client is built, so missing configuration surfaces with a hint about
// where to set it.
func (a *App) checkConnection() error {
	if a.config.APIKey == "" {
		return errors.NewConfigError("crm",
			fmt.Sprintf("no API key configured (set %s_API_KEY or api_key in %s.yaml)",
				constants.DefaultEnvPrefix, constants.DefaultConfigName),
			errors.ErrAPIKeyRequired)
	}
	if a.config.BaseURL == "" {
		return errors.NewConfigError("crm",
			fmt.Sprintf("no base URL configured (set %s_BASE_URL or base_url in %s.yaml)",
				constants.DefaultEnvPrefix, constants.DefaultConfigName),
			errors.ErrBaseURLRequired)
	}
	return nil
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []rollcall.Option {
	opts := []rollcall.Option{
		rollcall.WithAPIKey(a.config.APIKey),
		rollcall.WithBaseURL(a.config.BaseURL),
	}

	if a.config.Threshold > 0 {
		opts = append(opts, rollcall.WithThreshold(a.config.Threshold))
	}
	if a.config.PageSize > 0 {
		opts = append(opts, rollcall.WithPageSize(a.config.PageSize))
	}
	if len(a.config.UserLists) > 0 {
		opts = append(opts, rollcall.WithUserLists(a.config.UserLists...))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom reconciliation client (useful for testing).
func WithClient(client rollcall.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the tucker-sync server.
	ServerURL string `env:"SERVER_URL"`

	// AppKey is sent in the X-App-Key header on every request.
	AppKey string `env:"APP_KEY"`

	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client. ":memory:" selects an
	// in-memory database.
	DSN string `env:"DB"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientAccount carries the credentials the headless agent logs in with and
// the per-install identity.
type ClientAccount struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// InstallUUID identifies this installation. Generated on first run and
	// persisted in the local database when empty.
	InstallUUID string `env:"INSTALL_UUID"`
}

// ClientSync holds the agent's synchronization settings.
type ClientSync struct {
	// Classes lists the object classes this client synchronizes.
	Classes []string `env:"CLASSES" envSeparator:","`

	// Interval defines how often the background sync job runs.
	Interval time.Duration `env:"SYNC_INTERVAL"`
}

// ClientConfig is the top-level configuration of the headless sync agent.
// All values come from TUCKER_-prefixed environment variables.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Account ClientAccount
	Sync    ClientSync
}

var (
	ErrNoServerURL     = errors.New("no server URL was provided")
	ErrNoAccount       = errors.New("no account credentials were provided")
	ErrNoClientClasses = errors.New("no object classes to synchronize were provided")
)

// GetClientConfig loads and validates the agent configuration from the
// environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "TUCKER_"}); err != nil {
		return nil, fmt.Errorf("error parsing client environment: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = ":memory:"
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	var errs []error

	if cfg.Adapter.ServerURL == "" {
		errs = append(errs, ErrNoServerURL)
	}
	if cfg.Account.Email == "" || cfg.Account.Password == "" {
		errs = append(errs, ErrNoAccount)
	}
	if len(cfg.Sync.Classes) == 0 {
		errs = append(errs, ErrNoClientClasses)
	}

	return errors.Join(errs...)
}

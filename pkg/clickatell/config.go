package clickatell

import (
	"fmt"
	"time"
)

// API selects which of the provider's two parallel APIs a client speaks.
type API string

const (
	// APIHTTP is the legacy HTTP API. It authenticates with username and
	// password carried as query parameters on every request.
	APIHTTP API = "http"

	// APIREST is the REST API. It authenticates with a bearer API key and
	// exchanges JSON bodies.
	APIREST API = "rest"
)

// DefaultBaseURL is the production endpoint used when Config.BaseURL is empty.
const DefaultBaseURL = "https://api.clickatell.com/"

const (
	defaultTimeout        = 5 * time.Second
	defaultConnectTimeout = 5 * time.Second
)

type Config struct {
	API            API           `mapstructure:"api"`
	BaseURL        string        `mapstructure:"base_url"`
	APIID          string        `mapstructure:"api_id"`
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	APIKey         string        `mapstructure:"api_key"`
	Timeout        time.Duration `mapstructure:"timeout"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	return c
}

// validate enforces that exactly the credential form of the selected API is
// present: username+password for APIHTTP, an API key for APIREST.
func (c Config) validate() error {
	switch c.API {
	case APIHTTP:
		if c.Username == "" || c.Password == "" {
			return fmt.Errorf("%w: http api requires username and password", ErrInvalidArgument)
		}
		if c.APIKey != "" {
			return fmt.Errorf("%w: http api does not use an api key", ErrInvalidArgument)
		}
	case APIREST:
		if c.APIKey == "" {
			return fmt.Errorf("%w: rest api requires an api key", ErrInvalidArgument)
		}
		if c.Username != "" || c.Password != "" {
			return fmt.Errorf("%w: rest api does not use username or password", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: unknown api %q", ErrInvalidArgument, c.API)
	}
	if c.APIID == "" {
		return fmt.Errorf("%w: api id is required", ErrInvalidArgument)
	}
	return nil
}

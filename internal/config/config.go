// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for serve mode, e.g. ":9080".
	Addr string `koanf:"addr"`

	// BaseURL is the vendor statviewfeed endpoint.
	BaseURL string `koanf:"base_url"`

	// ClientCode selects the league on the vendor feed.
	ClientCode string `koanf:"client_code"`

	// APIKey authenticates against the vendor feed.
	APIKey string `koanf:"api_key"`

	// Language is the feed language parameter.
	Language string `koanf:"language"`

	// FetchTimeoutMS bounds each feed request.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// OutputDir is where one-shot scrapes write their CSV files.
	OutputDir string `koanf:"output_dir"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		BaseURL:        "https://lscluster.hockeytech.com/feed/index.php",
		ClientCode:     "pwhl",
		APIKey:         "694cfeed58c932ee",
		Language:       "en",
		FetchTimeoutMS: 15_000,
		OutputDir:      ".",
	}
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/krishisahayak/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port            int    `koanf:"port"`
		DefaultLanguage string `koanf:"default_language"`
	} `koanf:"server"`

	Database struct {
		URL string `koanf:"url"`
	} `koanf:"database"`

	Oracle struct {
		Provider          string  `koanf:"provider"`
		APIKey            string  `koanf:"api_key"`
		Model             string  `koanf:"model"`
		BaseURL           string  `koanf:"base_url"`
		TimeoutSeconds    int     `koanf:"timeout_seconds"`
		RequestsPerSecond float64 `koanf:"requests_per_second"`
	} `koanf:"oracle"`

	Speech struct {
		Endpoint string `koanf:"endpoint"`
		MediaDir string `koanf:"media_dir"`
	} `koanf:"speech"`
}

// LoadConfig loads the configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Set up default configuration
	k.Load(confmap.Provider(map[string]interface{}{
		"server.port":             8090,
		"server.default_language": "hin",
		"oracle.provider":         "gemini",
		"oracle.timeout_seconds":  60,
		"speech.media_dir":        "./media",
	}, "."), nil)

	// Load from TOML file if it exists
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{"./krishisahayak.toml", "$HOME/.krishisahayak.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Load from environment variables with prefix KRISHI_
	k.Load(env.Provider("KRISHI_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "KRISHI_")), "_", ".", 1)
	}), nil)

	// Unmarshal into Config struct
	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	// Create sample configuration
	sampleConfig := `# KrishiSahayak Configuration

[server]
port = 8090
default_language = "hin"

[database]
url = "postgres://localhost:5432/krishisahayak?sslmode=disable"

[oracle]
provider = "gemini"
api_key = "your-gemini-api-key"
model = "gemini-2.5-flash"
timeout_seconds = 60
requests_per_second = 2.0

[speech]
endpoint = "http://localhost:9010/synthesize"
media_dir = "./media"
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", config.Server.Port)
	}

	if !models.IsSupportedLanguage(models.Language(config.Server.DefaultLanguage)) {
		return fmt.Errorf("default language %q is not supported", config.Server.DefaultLanguage)
	}

	if config.Oracle.Provider == "" {
		return fmt.Errorf("oracle provider is required")
	}

	switch config.Oracle.Provider {
	case "openai", "gemini", "claude", "cohere":
		if config.Oracle.APIKey == "" {
			return fmt.Errorf("%s api_key is required", config.Oracle.Provider)
		}
	case "ollama":
		// Local provider, no key required.
	default:
		return fmt.Errorf("unknown oracle provider %q", config.Oracle.Provider)
	}

	if config.Oracle.TimeoutSeconds <= 0 {
		return fmt.Errorf("oracle timeout must be positive")
	}

	return nil
}

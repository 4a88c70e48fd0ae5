package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/brandguard-app/brandguard/internal/domain/brand"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	// Environment switches error detail exposure; only "development"
	// ever includes internals in 500 responses.
	Environment string `yaml:"environment"`

	Gemini struct {
		APIKey       string `yaml:"apiKey"`
		BackupAPIKey string `yaml:"backupApiKey"`
	} `yaml:"gemini"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`
}

// Load reads the yaml config file, then applies environment overrides.
// A missing file is not an error; the service can run on environment
// variables alone.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.RateLimit.Capacity = 10
	cfg.RateLimit.RefillRate = 5
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY_BACKUP"); v != "" {
		c.Gemini.BackupAPIKey = v
	}
}

// Credentials returns the ordered fallback list, primary first. Unset keys
// are skipped, so the list may be empty.
func (c *Config) Credentials() []brand.Credential {
	var creds []brand.Credential
	if c.Gemini.APIKey != "" {
		creds = append(creds, brand.Credential{Label: "primary", Key: c.Gemini.APIKey})
	}
	if c.Gemini.BackupAPIKey != "" {
		creds = append(creds, brand.Credential{Label: "backup", Key: c.Gemini.BackupAPIKey})
	}
	return creds
}

// Development reports whether internal error detail may be exposed.
func (c *Config) Development() bool {
	return c.Environment == "development"
}

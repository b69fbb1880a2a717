package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Storage struct {
		Type     string `yaml:"type"`      // local, supabase
		BasePath string `yaml:"base_path"` // local storage root
		BaseURL  string `yaml:"base_url"`  // public URL base for local storage
		Endpoint string `yaml:"endpoint"`  // supabase project URL
		APIKey   string `yaml:"api_key"`   // supabase service-role key
		Bucket   string `yaml:"bucket"`
	} `yaml:"storage"`

	Geo struct {
		BaseURL  string `yaml:"base_url"` // nominatim endpoint
		CacheTTL int    `yaml:"cache_ttl_hours"`
	} `yaml:"geo"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		AdminEmail   string `yaml:"admin_email"`
	} `yaml:"email"`

	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admin"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, then lets environment variables override the
// sensitive values. DATABASE_URL alone is enough to boot in test mode.
func LoadConfig() {
	var cfg Config

	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	} else if os.Getenv("DATABASE_URL") == "" {
		log.Fatalf("Failed to open config file at %s: %v", configPath, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	AppConfig = &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		cfg.Storage.Endpoint = v
	}
	if v := os.Getenv("SUPABASE_SERVICE_ROLE_KEY"); v != "" {
		cfg.Storage.APIKey = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/api/v1/files"
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = "replink-report-images"
	}
	if cfg.Geo.BaseURL == "" {
		cfg.Geo.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geo.CacheTTL == 0 {
		cfg.Geo.CacheTTL = 24
	}
}

// GetConfig returns the loaded configuration.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultAPIKey = "dev-key-change-me"

type (
	ServerConfig struct {
		Host            string
		DebugHost       string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		BodyLimit       string
		DisableReqLogs  bool
	}

	CORSConfig struct {
		AllowOrigins []string
	}

	Config struct {
		AppName      string
		ServiceName  string
		Build        string
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		APIKey       string
		RollbarToken string
		Server       ServerConfig
		CORS         CORSConfig
	}
)

// NewConfig loads the configuration once at startup.
// Precedence: environment > config/.env.<env> > .env > defaults.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("app_name", "MindCanvas")
	v.SetDefault("service_name", "MindCanvas Teacher Actions")
	v.SetDefault("build", "1.0.0")
	v.SetDefault("debug", true)
	v.SetDefault("test_mode", false)
	v.SetDefault("api_key", defaultAPIKey)
	v.SetDefault("rollbar_token", "")
	v.SetDefault("server.host", ":8000")
	v.SetDefault("server.debug_host", ":4000")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 5*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.body_limit", "1M")
	v.SetDefault("server.disable_req_logs", false)
	v.SetDefault("cors.allow_origins", []string{"*"})

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("test_mode", true)
	case "PROD":
		v.SetDefault("debug", false)
	}

	// load dotenv files if they exist (ignore if they do not)
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd: %v", err)
	}
	loadDotEnv(filepath.Join(wd, "config", ".env."+strings.ToLower(env)))
	loadDotEnv(filepath.Join(wd, ".env"))

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		AppName:      v.GetString("app_name"),
		ServiceName:  v.GetString("service_name"),
		Build:        v.GetString("build"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("test_mode"),
		APIKey:       v.GetString("api_key"),
		RollbarToken: v.GetString("rollbar_token"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			DebugHost:       v.GetString("server.debug_host"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			BodyLimit:       v.GetString("server.body_limit"),
			DisableReqLogs:  v.GetBool("server.disable_req_logs"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetStringSlice("cors.allow_origins"),
		},
	}
}

// UsesDefaultAPIKey reports whether no secret was configured.
func (c *Config) UsesDefaultAPIKey() bool {
	return c.APIKey == defaultAPIKey
}

// loadDotEnv never overrides variables already present in the environment.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			log.Fatalf("config.godotenv(%s): %v", path, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", path, err)
	}
}

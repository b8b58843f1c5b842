package config

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	BankName     string `env:"ATM_BANK_NAME" env-default:"Filipinas Incorporated"`
	DataPath     string `env:"ATM_DATA_PATH" env-default:"data/users.csv"`
	MaxAttempts  int    `env:"ATM_MAX_ATTEMPTS" env-default:"3"`
	AtomicWrites bool   `env:"ATM_ATOMIC_WRITES" env-default:"true"`
	ClearScreen  bool   `env:"ATM_CLEAR_SCREEN" env-default:"true"`
	LogLevel     string `env:"ATM_LOG_LEVEL" env-default:"warn"`
	LogFile      string `env:"ATM_LOG_FILE"`
}

// Load reads the environment and then applies command-line flags, which
// take precedence. A help flag yields flag.ErrHelp.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	fs := flag.NewFlagSet("atm", flag.ContinueOnError)
	fs.StringVar(&cfg.BankName, "bank", cfg.BankName, "bank name shown in the banner")
	fs.StringVar(&cfg.DataPath, "data", cfg.DataPath, "path to the account record file")
	fs.IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "attempts allowed for account ID, PIN and name entry")
	fs.BoolVar(&cfg.AtomicWrites, "atomic", cfg.AtomicWrites, "rewrite the record file via temp file and rename")
	fs.BoolVar(&cfg.ClearScreen, "clear", cfg.ClearScreen, "clear the terminal between screens")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write JSON logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

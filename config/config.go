// Package config loads market-master settings from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"market-master/domain"
	"market-master/service"
)

type Config struct {
	API        APIConfig        `mapstructure:"api"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Session    SessionConfig    `mapstructure:"session"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
	Carousel   CarouselConfig   `mapstructure:"carousel"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type APIConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Addr is the listen address.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"` // requests per window per client IP
	Window   time.Duration `mapstructure:"window"`
}

type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type CalculatorConfig struct {
	LoanTerms          []int   `mapstructure:"loan_terms"`
	DefaultTerm        int     `mapstructure:"default_term"`
	HomePrice          float64 `mapstructure:"home_price"`
	DownPaymentPercent float64 `mapstructure:"down_payment_percent"`
	InterestRate       float64 `mapstructure:"interest_rate"`
	PropertyTax        float64 `mapstructure:"property_tax"`
	HomeInsurance      float64 `mapstructure:"home_insurance"`
	HOAFees            float64 `mapstructure:"hoa_fees"`
}

// Defaults are the inputs a fresh calculator shows. The down payment amount
// is left for the caller to derive.
func (c CalculatorConfig) Defaults() domain.MortgageInputs {
	return domain.MortgageInputs{
		HomePrice:          c.HomePrice,
		DownPaymentPercent: c.DownPaymentPercent,
		InterestRate:       c.InterestRate,
		PropertyTax:        c.PropertyTax,
		HomeInsurance:      c.HomeInsurance,
		HOAFees:            c.HOAFees,
		LoanTermYears:      c.DefaultTerm,
	}
}

type CarouselConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
}

// Debug reports whether debug lines should be logged.
func (c LoggingConfig) Debug() bool {
	return strings.EqualFold(c.Level, "debug")
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml
//  2. ~/.market-master/config.yaml
//  3. /etc/market-master/config.yaml
//
// Environment variables override file values, e.g. MARKETMASTER_REDIS_ADDR.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".market-master"))
	v.AddConfigPath("/etc/market-master")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := unmarshal(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MARKETMASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Calculator.LoanTerms) == 0 {
		return fmt.Errorf("calculator.loan_terms must not be empty")
	}
	offered := false
	for _, t := range c.Calculator.LoanTerms {
		if t <= 0 || t > service.MaxLoanTermYears {
			return fmt.Errorf("calculator.loan_terms: invalid term %d", t)
		}
		offered = offered || t == c.Calculator.DefaultTerm
	}
	if c.Calculator.DefaultTerm != 0 && !offered {
		return fmt.Errorf("calculator.default_term %d is not in loan_terms", c.Calculator.DefaultTerm)
	}
	if c.RateLimit.Capacity <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit: capacity and window must be positive")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("rate_limit.capacity", 120)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "market-master:")

	// a page session, not a saved scenario
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.sweep_interval", 5*time.Minute)

	v.SetDefault("calculator.loan_terms", []int{15, 20, 30})
	v.SetDefault("calculator.default_term", 30)
	v.SetDefault("calculator.home_price", 400000)
	v.SetDefault("calculator.down_payment_percent", 20)
	v.SetDefault("calculator.interest_rate", 6.5)
	v.SetDefault("calculator.property_tax", 4800)
	v.SetDefault("calculator.home_insurance", 1200)
	v.SetDefault("calculator.hoa_fees", 0)

	v.SetDefault("carousel.interval", 5*time.Second)

	v.SetDefault("logging.level", "info")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/tradeledger"
	"github.com/spf13/viper"
)

// Config is the content of the tstat configuration file.
type Config struct {
	Workbook    string              `mapstructure:"workbook"`
	Currency    string              `mapstructure:"currency"`
	DaysPerYear int                 `mapstructure:"days_per_year"`
	Sheets      Sheets              `mapstructure:"sheets"`
	Columns     tradeledger.Columns `mapstructure:"columns"`
	// Select maps sheet names to JSONPath expressions, for nested JSON exports.
	Select map[string]string `mapstructure:"select"`
}

// Sheets names the sheets of the workbook.
type Sheets struct {
	Trades string `mapstructure:"trades"`
	Equity string `mapstructure:"equity"`
}

const envPrefix = "TSTAT"

// LoadConfig reads the configuration file at path, or tstat.yaml in the
// current directory if path is empty. A missing tstat.yaml is not an error.
// Environment variables prefixed with TSTAT_ override the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// every key needs a default to be overridable from the environment.
	defaults := map[string]any{
		"workbook":                "",
		"currency":                tradeledger.DefaultCurrency,
		"days_per_year":           tradeledger.DefaultDaysPerYear,
		"sheets.trades":           tradeledger.TradeSheet,
		"sheets.equity":           tradeledger.EquitySheet,
		"columns.profit":          tradeledger.DefaultColumns.Profit,
		"columns.close_date":      tradeledger.DefaultColumns.CloseDate,
		"columns.date":            tradeledger.DefaultColumns.Date,
		"columns.balance":         tradeledger.DefaultColumns.Balance,
		"columns.realized_equity": tradeledger.DefaultColumns.RealizedEquity,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read configuration %q: %w", path, err)
		}
	} else {
		v.SetConfigName("tstat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("could not read configuration: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.DaysPerYear <= 0 {
		return fmt.Errorf("invalid configuration: days_per_year must be positive, got %d", c.DaysPerYear)
	}
	if strings.TrimSpace(c.Sheets.Trades) == "" {
		return errors.New("invalid configuration: the trades sheet has no name")
	}
	return nil
}

// Options returns the analysis options set by the configuration.
func (c *Config) Options() []tradeledger.Option {
	return []tradeledger.Option{
		tradeledger.WithColumns(c.Columns),
		tradeledger.WithCurrency(c.Currency),
		tradeledger.WithDaysPerYear(c.DaysPerYear),
	}
}

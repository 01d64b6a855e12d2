package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"toyrobot/internal/interpreter"
	"toyrobot/internal/report"
)

// EnvPrefix is prepended to every environment override, e.g.
// TOYROBOT_TABLE_MAX_X.
const EnvPrefix = "TOYROBOT"

// Config represents the full toyrobot configuration
type Config struct {
	Table  TableConfig  `mapstructure:"table"`
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
}

// TableConfig holds the inclusive table bounds
type TableConfig struct {
	MinX int `mapstructure:"min_x"`
	MinY int `mapstructure:"min_y"`
	MaxX int `mapstructure:"max_x"`
	MaxY int `mapstructure:"max_y"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key with its default so env overrides and
// Unmarshal see them even without a config file.
func SetDefaults(v *viper.Viper) {
	b := interpreter.DefaultBounds()
	v.SetDefault("table.min_x", b.MinX)
	v.SetDefault("table.min_y", b.MinY)
	v.SetDefault("table.max_x", b.MaxX)
	v.SetDefault("table.max_y", b.MaxY)
	v.SetDefault("log.level", "info")
	v.SetDefault("report.format", string(report.FormatText))
}

// BindEnv makes TOYROBOT_<SECTION>_<KEY> override <section>.<key>.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load loads configuration from v and validates it
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = string(report.FormatText)
	}
}

// Validate checks the table bounds and the report format
func (c *Config) Validate() error {
	if err := c.Table.Bounds().Validate(); err != nil {
		return errors.Wrap(err, "invalid table")
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return err
	}
	return nil
}

func (t TableConfig) Bounds() interpreter.Bounds {
	return interpreter.Bounds{MinX: t.MinX, MinY: t.MinY, MaxX: t.MaxX, MaxY: t.MaxY}
}

package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the input files and names the shapefile fields to read.
type DataConfig struct {
	GeometryPath string `yaml:"geometry_path" mapstructure:"geometry_path"`
	TabularPath  string `yaml:"tabular_path" mapstructure:"tabular_path"`
	IDField      string `yaml:"id_field" mapstructure:"id_field"`
	CountyField  string `yaml:"county_field" mapstructure:"county_field"`
}

// OutputConfig configures where rendered artifacts land.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// RenderConfig configures map styling.
type RenderConfig struct {
	StylePath string `yaml:"style_path" mapstructure:"style_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FOODACCESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.geometry_path", "data/tl_2010_53_tract00/tl_2010_53_tract00.shp")
	v.SetDefault("data.tabular_path", "data/food_access.csv")
	v.SetDefault("data.id_field", "CTIDFP00")
	v.SetDefault("data.county_field", "COUNTYFP00")
	v.SetDefault("output.dir", ".")
	v.SetDefault("render.style_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the loaded configuration can drive a run.
func (c *Config) Validate() error {
	var problems []string
	if c.Data.GeometryPath == "" {
		problems = append(problems, "data.geometry_path is required")
	}
	if c.Data.TabularPath == "" {
		problems = append(problems, "data.tabular_path is required")
	}
	if c.Data.IDField == "" {
		problems = append(problems, "data.id_field is required")
	}
	if c.Data.CountyField == "" {
		problems = append(problems, "data.county_field is required")
	}
	if c.Output.Dir == "" {
		problems = append(problems, "output.dir is required")
	}
	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

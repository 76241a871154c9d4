package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/huynhanx03/go-snippets/pkg/common/apperr"
)

const component = "settings"

// DefaultPaths are searched for config.yaml when Load gets no paths.
var DefaultPaths = []string{"./configs", "."}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", "warn")
	v.SetDefault("logger.file_log_name", "")
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.compress", false)
	v.SetDefault("leak.allocator", "raw")
}

// Default returns the configuration used when no valid config file exists.
func Default() *Config {
	return &Config{
		Logger: Logger{
			LogLevel:   "warn",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
		},
		Leak: Leak{Allocator: "raw"},
	}
}

// Load reads config.yaml from the first of paths that holds one. A missing
// file is not an error: every field then keeps its default.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperr.MapError(component, err, apperr.CodeConfig, apperr.MsgLoadFailed)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperr.MapError(component, err, apperr.CodeConfig, apperr.MsgLoadFailed)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return apperr.MapError(component, err, apperr.CodeConfig, apperr.MsgValidateFailed)
	}
	return nil
}

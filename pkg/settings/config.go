package settings

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Leak   Leak   `mapstructure:"leak"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress"`
}

// Leak selects the memory backend of the leak demonstrator. The batch count
// is fixed and deliberately not configurable.
type Leak struct {
	Allocator string `mapstructure:"allocator" validate:"oneof=raw heap pool"`
}

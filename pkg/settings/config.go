package settings

type Config struct {
	Game   Game   `yaml:"game"`
	Logger Logger `yaml:"logger"`
}

// Game selects the ruleset and the piece stream.
type Game struct {
	Variant  string `yaml:"variant" validate:"required,oneof=classic reserve swap"`
	Alphabet string `yaml:"alphabet" validate:"omitempty,oneof=classic extended"`
	Seed     uint64 `yaml:"seed"` // 0 seeds from the clock
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `yaml:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `yaml:"compress"`
}

// Variant names.
const (
	VariantClassic = "classic"
	VariantReserve = "reserve"
	VariantSwap    = "swap"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Game: Game{
			Variant: VariantSwap,
		},
		Logger: Logger{
			LogLevel:   "warn",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    10,
		},
	}
}

package settings

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/huynhanx03/go-tetris/pkg/common/apperr"
	"github.com/huynhanx03/go-tetris/pkg/piece"
)

// Environment variables that override file values.
const (
	EnvVariant  = "TETRIS_VARIANT"
	EnvAlphabet = "TETRIS_ALPHABET"
	EnvSeed     = "TETRIS_SEED"
	EnvLogLevel = "TETRIS_LOG_LEVEL"
	EnvLogFile  = "TETRIS_LOG_FILE"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the YAML file at path on top of the defaults, then applies
// variables from an optional .env file and the process environment, and
// validates the result. A missing config file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, apperr.MapError(component, err, CodeLoad, apperr.MsgLoadFailed+" config "+path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, apperr.MapError(component, err, CodeParse, apperr.MsgParseFailed+" config "+path)
			}
		}
	}

	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return apperr.MapError(component, err, CodeInvalid, apperr.MsgInvalid+" config")
	}
	return nil
}

// PieceAlphabet resolves the piece alphabet, falling back to the variant default:
// extended pieces for the swap variant, classic ones otherwise.
func (g Game) PieceAlphabet() (piece.Alphabet, error) {
	if g.Alphabet != "" {
		return piece.ParseAlphabet(g.Alphabet)
	}
	if g.Variant == VariantSwap {
		return piece.Extended, nil
	}
	return piece.Classic, nil
}

// loadEnvFiles loads .env style files without overriding variables that are
// already set. Missing files are skipped.
func loadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return apperr.MapError(component, err, CodeLoad, apperr.MsgLoadFailed+" env file "+f)
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvVariant); v != "" {
		c.Game.Variant = v
	}
	if v := os.Getenv(EnvAlphabet); v != "" {
		c.Game.Alphabet = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return apperr.MapError(component, err, CodeParse, apperr.MsgParseFailed+" "+EnvSeed)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logger.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logger.FileLogName = v
	}
	return nil
}

// Package config holds the runtime settings of the drill tool. Values come
// from the environment (WORTLAUT_*), optionally overridden by a wortlaut.yml
// next to the deck files.
package config

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigFile is looked up in the working directory.
const ConfigFile = "wortlaut.yml"

// Config is the full runtime configuration.
type Config struct {
	// CacheDir is the root of the audio artifact store. Empty selects the
	// user cache directory.
	CacheDir string `yaml:"cache_dir" env:"WORTLAUT_CACHE_DIR"`

	// DeckDir holds nouns.csv and verbs.csv.
	DeckDir string `yaml:"deck_dir" env:"WORTLAUT_DECK_DIR" env-default:"."`

	// RemoteBaseURL is the pronunciation provider endpoint.
	RemoteBaseURL string `yaml:"remote_base_url" env:"WORTLAUT_REMOTE_BASE_URL" env-default:"https://www.verbformen.de"`

	// DeckSize caps the articles session at this many nouns. 0 disables
	// the cap.
	DeckSize int `yaml:"deck_size" env:"WORTLAUT_DECK_SIZE" env-default:"25"`

	// PluralChance is the probability that an articles item drills the
	// plural form of a noun instead of the singular.
	PluralChance float64 `yaml:"plural_chance" env:"WORTLAUT_PLURAL_CHANCE" env-default:"0"`

	// Seed fixes the session randomness for reproducible runs. 0 seeds
	// from the clock.
	Seed int64 `yaml:"seed" env:"WORTLAUT_SEED" env-default:"0"`

	// Audio toggles playback. Off, sessions run silently.
	Audio bool `yaml:"audio" env:"WORTLAUT_AUDIO" env-default:"true"`

	// MinPlay is the minimum wait per clip, so short recordings are not
	// truncated by the next prompt.
	MinPlay time.Duration `yaml:"min_play" env:"WORTLAUT_MIN_PLAY" env-default:"1750ms"`
}

// Load reads the configuration from wortlaut.yml when present, then the
// environment, and fills the cache dir default.
func Load() (Config, error) {
	var cfg Config

	var err error
	if _, statErr := os.Stat(ConfigFile); statErr == nil {
		err = cleanenv.ReadConfig(ConfigFile, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve cache dir: %w", err)
		}
		cfg.CacheDir = filepath.Join(base, "wortlaut", "audio")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.PluralChance < 0 || c.PluralChance > 1 {
		return fmt.Errorf("plural chance %v is outside [0, 1]", c.PluralChance)
	}
	if c.DeckSize < 0 {
		return fmt.Errorf("deck size %d is negative", c.DeckSize)
	}
	if c.MinPlay < 0 {
		return fmt.Errorf("min play %v is negative", c.MinPlay)
	}
	return nil
}

// RNG builds the session randomness source from the configured seed.
func (c Config) RNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

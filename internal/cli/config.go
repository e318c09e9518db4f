package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	qerrors "github.com/levbishop/qdraw/pkg/errors"
	"github.com/levbishop/qdraw/pkg/render/text"
)

// Config holds the user-tunable drawing defaults. Flags override every
// field per invocation.
type Config struct {
	// Justify selects the column packing strategy: left, right, or none.
	Justify string `toml:"justify"`

	// Compression selects the vertical compression level: high, medium, or low.
	Compression string `toml:"compression"`

	// LineLength folds drawings into pages of at most this many cells.
	// Zero or negative disables folding.
	LineLength int `toml:"line_length"`

	// ReverseBits puts the highest-index bit of each register on top.
	ReverseBits bool `toml:"reverse_bits"`

	// Barriers controls whether barriers are drawn at all.
	Barriers bool `toml:"barriers"`
}

func defaultConfig() Config {
	return Config{
		Justify:     "left",
		Compression: "high",
		Barriers:    true,
	}
}

// configPath returns the user config file location,
// e.g. ~/.config/qdraw/config.toml on Linux.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// loadConfig reads the TOML config at path on top of the defaults. A
// missing file is not an error; a malformed one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return defaultConfig(), qerrors.Wrap(qerrors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return cfg, nil
}

// renderOptions translates the config into drawing options. An invalid
// justify or compression name surfaces here, before any rendering.
func (cfg Config) renderOptions() ([]text.Option, error) {
	j, err := text.ParseJustify(cfg.Justify)
	if err != nil {
		return nil, err
	}
	v, err := text.ParseCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}
	opts := []text.Option{text.WithJustify(j), text.WithCompression(v)}
	if cfg.LineLength > 0 {
		opts = append(opts, text.WithLineLength(cfg.LineLength))
	}
	if cfg.ReverseBits {
		opts = append(opts, text.WithReverseBits())
	}
	if !cfg.Barriers {
		opts = append(opts, text.WithoutBarriers())
	}
	return opts, nil
}

package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/napobear/FEN2SVG/pkg/errors"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given. Its absence is not an error.
const defaultConfigFile = "fen2svg.toml"

// fileConfig holds render defaults read from a TOML file. Only keys
// actually present in the file are applied, and explicit command-line
// flags always win over file values.
type fileConfig struct {
	Border        bool   `toml:"border"`
	Coordinates   bool   `toml:"coordinates"`
	MoveIndicator bool   `toml:"move-indicator"`
	Rotate        bool   `toml:"rotate"`
	FENNames      bool   `toml:"fen-names"`
	Template      string `toml:"template"`
	OutputDir     string `toml:"output-dir"`
}

// loadConfig reads a defaults file. With an explicit path the file must
// exist and parse; with the implicit default path a missing file yields
// an empty config.
func loadConfig(path string) (fileConfig, toml.MetaData, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return fileConfig{}, toml.MetaData{}, nil
		}
		return fileConfig{}, toml.MetaData{}, errors.Wrap(errors.ErrCodeUsage, err, "cannot load config %s", path)
	}
	return cfg, meta, nil
}

// applyConfig copies file values into opts for every key the file
// defines, unless the matching flag was set on the command line.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg fileConfig, meta toml.MetaData) {
	set := func(key, flag string, apply func()) {
		if meta.IsDefined(key) && !cmd.Flags().Changed(flag) {
			apply()
		}
	}

	set("border", "border", func() { opts.border = cfg.Border })
	set("coordinates", "coordinates", func() { opts.coordinates = cfg.Coordinates })
	set("move-indicator", "move-indicator", func() { opts.moveIndicator = cfg.MoveIndicator })
	set("rotate", "rotate", func() { opts.rotate = cfg.Rotate })
	set("fen-names", "fen-names", func() { opts.fenNames = cfg.FENNames })
	set("template", "template", func() { opts.template = cfg.Template })
	set("output-dir", "output-dir", func() { opts.outputDir = cfg.OutputDir })
}

package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/Hkmu/icon-generator/pkg/errors"
)

// fileConfig is the optional TOML file seeding flag defaults, e.g.:
//
//	output = "assets/icons"
//	ios_color = "#112233"
//	android_color = "coral"
//	badge = "bug"
//	png = [32, 64, 128]
type fileConfig struct {
	Output       string `toml:"output"`
	IOSColor     string `toml:"ios_color"`
	AndroidColor string `toml:"android_color"`
	Badge        string `toml:"badge"`
	PNG          []int  `toml:"png"`
}

// applyConfigFile seeds opts from the file named by --config. Values from
// the file apply only where the corresponding flag was not set on the
// command line; there is no implicit file discovery, and a missing
// explicit file is an error.
func applyConfigFile(cmd *cobra.Command, opts *generateOptions) error {
	if opts.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(opts.configPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", opts.configPath)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", opts.configPath)
	}

	flags := cmd.Flags()
	if fc.Output != "" && !flags.Changed("output") {
		opts.output = fc.Output
	}
	if fc.IOSColor != "" && !flags.Changed("ios-color") {
		opts.iosColor = fc.IOSColor
	}
	if fc.AndroidColor != "" && !flags.Changed("android-color") {
		opts.androidColor = fc.AndroidColor
	}
	if fc.Badge != "" && !flags.Changed("badge") {
		opts.badgeVariant = fc.Badge
	}
	if len(fc.PNG) > 0 && !flags.Changed("png") {
		opts.pngSizes = fc.PNG
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/Hkmu/icon-generator/pkg/badge"
	"github.com/Hkmu/icon-generator/pkg/csscolor"
	"github.com/Hkmu/icon-generator/pkg/errors"
	"github.com/Hkmu/icon-generator/pkg/icons"
	"github.com/Hkmu/icon-generator/pkg/observability"
)

// generateOptions mirrors the flag surface of the root command.
type generateOptions struct {
	output     string
	configPath string

	pngSizes []int

	icoOnly     bool
	icnsOnly    bool
	desktopOnly bool
	mobileOnly  bool

	windows bool
	macos   bool
	linux   bool
	android bool
	ios     bool
	tauri   bool

	iosColor     string
	androidColor string

	adaptive bool
	noRound  bool

	dev           bool
	badgeVariant  string
	badgeRotation float64
}

// generateCommand creates the root command that renders every requested
// icon asset from a single source image.
func (c *CLI) generateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "icongen INPUT",
		Short: "Generate platform icon assets from a single source image",
		Long: `Icongen turns one square source image into the icon assets every target
platform expects: a Windows ICO, a macOS ICNS with its asset-catalog
manifest, the Linux hicolor PNG ladder, Android launcher mipmaps and an
iOS icon set. Platforms can be selected individually, or an
explicit size list can be rendered as flat PNGs instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "icons", "output directory")
	flags.StringVar(&opts.configPath, "config", "", "TOML config file seeding flag defaults")
	flags.IntSliceVar(&opts.pngSizes, "png", nil, "generate flat PNGs at these sizes instead of platform sets")
	flags.BoolVar(&opts.icoOnly, "ico-only", false, "generate only icon.ico")
	flags.BoolVar(&opts.icnsOnly, "icns-only", false, "generate only icon.icns")
	flags.BoolVar(&opts.desktopOnly, "desktop-only", false, "generate only desktop assets (windows, macos, linux)")
	flags.BoolVar(&opts.mobileOnly, "mobile-only", false, "generate only mobile assets (android, ios)")
	flags.BoolVar(&opts.windows, "windows", false, "generate Windows assets")
	flags.BoolVar(&opts.macos, "macos", false, "generate macOS assets")
	flags.BoolVar(&opts.linux, "linux", false, "generate Linux assets")
	flags.BoolVar(&opts.android, "android", false, "generate Android assets")
	flags.BoolVar(&opts.ios, "ios", false, "generate iOS assets")
	flags.BoolVar(&opts.tauri, "tauri", false, "generate a Tauri desktop bundle")
	flags.StringVar(&opts.iosColor, "ios-color", "white", "CSS background color for iOS icons")
	flags.StringVar(&opts.androidColor, "android-color", "white", "CSS fill color for the adaptive background layer")
	flags.BoolVar(&opts.adaptive, "adaptive", false, "generate Android adaptive icon layers")
	flags.BoolVar(&opts.noRound, "no-round", false, "skip the round Android launcher variant")
	flags.BoolVar(&opts.dev, "dev", false, "stamp a development badge on every icon")
	flags.StringVar(&opts.badgeVariant, "badge", badge.Banner, fmt.Sprintf("badge variant (%s)", strings.Join(badge.Variants(), ", ")))
	flags.Float64Var(&opts.badgeRotation, "badge-rotation", 0, "bug badge rotation in degrees")

	cmd.MarkFlagsMutuallyExclusive("ico-only", "icns-only", "desktop-only", "mobile-only")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, input string, opts *generateOptions) error {
	if err := applyConfigFile(cmd, opts); err != nil {
		return err
	}

	// Unparsable colors fall back to opaque white rather than aborting.
	iosColor := csscolor.Resolve(opts.iosColor)
	androidColor := csscolor.Resolve(opts.androidColor)

	src, err := imaging.Open(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeDecodeFailed, err, "open source image %s", input)
	}
	c.Logger.Debug("loaded source image", "path", input, "size", src.Bounds().Dx())

	cfg := icons.Config{
		IOSColor:      iosColor,
		AndroidColor:  androidColor,
		Round:         !opts.noRound,
		Adaptive:      opts.adaptive,
		Dev:           opts.dev,
		BadgeVariant:  opts.badgeVariant,
		BadgeRotation: opts.badgeRotation,
		Badges:        badge.Builtin(),
	}
	gen, err := icons.New(src, opts.output, cfg)
	if err != nil {
		return err
	}

	sel := icons.Selection{
		Sizes:       opts.pngSizes,
		ICOOnly:     opts.icoOnly,
		ICNSOnly:    opts.icnsOnly,
		DesktopOnly: opts.desktopOnly,
		MobileOnly:  opts.mobileOnly,
		Windows:     opts.windows,
		MacOS:       opts.macos,
		Linux:       opts.linux,
		Android:     opts.android,
		IOS:         opts.ios,
		Tauri:       opts.tauri,
	}

	hooks := &consoleHooks{logger: c.Logger}
	observability.SetGenerationHooks(hooks)
	defer observability.Reset()

	p := newProgress(c.Logger)
	if err := gen.Run(cmd.Context(), sel); err != nil {
		printError("generation failed: %s", errors.UserMessage(err))
		return err
	}
	p.done(fmt.Sprintf("Generated %d files in %s", hooks.total, opts.output))
	printSuccess("icons written to %s", opts.output)
	return nil
}

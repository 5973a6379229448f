package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/prism-palette/api/colorspace"
	"github.com/prism-palette/api/palette"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prismctl",
		Short:         "prismctl - color palette tools",
		Long:          `prismctl generates palettes and color schemes, checks contrast and exports palettes as CSS, SCSS or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newRandomCmd(),
		newSchemeCmd(),
		newExportCmd(),
		newContrastCmd(),
		newInfoCmd(),
	)
	return rootCmd
}

func newRandomCmd() *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "random [--count n] [--seed s]",
		Short: "Print a random palette, one color per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative")
			}
			gen := palette.NewGenerator(nil)
			if cmd.Flags().Changed("seed") {
				gen = palette.NewSeededGenerator(seed)
			}
			printLines(cmd, gen.RandomPalette(count))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of colors")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible palette")
	return cmd
}

func newSchemeCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "scheme <type> <base>",
		Short: "Print a color scheme built from a base color",
		Long:  "Types: " + joinSchemes() + ". --count applies to analogous and monochromatic.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, err := palette.ParseScheme(args[0])
			if err != nil {
				return err
			}
			colors, err := palette.Generate(scheme, args[1], count)
			if err != nil {
				return err
			}
			printLines(cmd, colors)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "scheme size, 0 for the scheme default")
	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <css|scss|json> <color>...",
		Short: "Export colors as CSS variables, SCSS variables or JSON",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := palette.ParseFormat(args[0])
			if err != nil {
				return err
			}
			colors, err := palette.Normalize(args[1:])
			if err != nil {
				return err
			}
			out, err := palette.FormatForExport(colors, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newContrastCmd() *cobra.Command {
	var level, size string

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Report the WCAG contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := colorspace.ParseLevel(level)
			if err != nil {
				return err
			}
			ts, err := colorspace.ParseTextSize(size)
			if err != nil {
				return err
			}
			report, err := colorspace.Check(args[0], args[1], lvl, ts)
			if err != nil {
				return err
			}

			verdict := "FAIL"
			if report.Passes {
				verdict = "PASS"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s on %s: %s\n", report.Foreground, report.Background, report.RatioText)
			fmt.Fprintf(out, "%s %s text: %s\n", report.Level, report.TextSize, verdict)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "AA", "conformance level, AA or AAA")
	cmd.Flags().StringVar(&size, "size", "normal", "text size, normal or large")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <hex>",
		Short: "Describe a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colorspace.ParseHex(args[0])
			if err != nil {
				return err
			}
			rgb, _ := colorspace.HexToRGB(hex)
			hsl, _ := colorspace.HexToHSL(hex)
			name, _ := palette.DetailedName(hex)
			text, _ := colorspace.ReadableTextColor(hex)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hex:  %s\n", hex)
			fmt.Fprintf(out, "rgb:  rgb(%d, %d, %d)\n", rgb.R, rgb.G, rgb.B)
			fmt.Fprintf(out, "hsl:  hsl(%d, %d%%, %d%%)\n", hsl.H, hsl.S, hsl.L)
			fmt.Fprintf(out, "name: %s\n", name)
			fmt.Fprintf(out, "text: %s\n", text)
			return nil
		},
	}
}

func printLines(cmd *cobra.Command, colors []string) {
	for _, c := range colors {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}
}

func joinSchemes() string {
	names := make([]string, len(palette.Schemes))
	for i, s := range palette.Schemes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

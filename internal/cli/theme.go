package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodecanvas/pkg/editor"
)

// themeCommand creates the theme command group.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage editor themes",
	}
	cmd.AddCommand(c.themeInitCommand())
	cmd.AddCommand(c.themeCheckCommand())
	return cmd
}

// themeInitCommand writes a default theme file for editing.
func (c *CLI) themeInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default theme file",
		Long:  `Writes the built-in style and interaction settings to a TOML file. Edit the file and pass it to "demo --theme" to restyle the editor; with --watch the demo reloads it on save.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultThemeFile
			if len(args) == 1 {
				path = resolveThemePath(args[0])
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := editor.WriteDefaultTheme(path); err != nil {
				return fmt.Errorf("writing theme: %w", err)
			}
			c.Logger.Info("Wrote default theme", "path", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

// themeCheckCommand parses a theme file and reports problems without
// starting the editor.
func (c *CLI) themeCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Validate a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveThemePath(args[0])
			style, cfg, err := editor.LoadTheme(path)
			if err != nil {
				return fmt.Errorf("loading theme: %w", err)
			}
			c.Logger.Info("Theme OK",
				"path", path,
				"pin_colors", len(style.PinColors),
				"zoom_min", cfg.ZoomMin,
				"zoom_max", cfg.ZoomMax,
			)
			return nil
		},
	}
}

// resolveThemePath appends the default filename when path is a directory.
func resolveThemePath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, defaultThemeFile)
	}
	return path
}

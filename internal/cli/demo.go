package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nodecanvas/pkg/editor"
)

// demoCommand creates the demo command, an interactive graph session in the
// terminal.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		themePath   string
		watchTheme  bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive node-graph session",
		Long:  `Opens a small demo graph in the terminal. Drag nodes with the left mouse button, pan with the middle button, zoom with the wheel, and drag between pin heads to connect them. Alt-click a pin head to break its connections.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := uuid.NewString()
			c.Logger.Debug("Starting demo session", "session", session)

			var style *editor.Style
			var cfg *editor.Settings
			if themePath != "" {
				s, settings, err := editor.LoadTheme(themePath)
				if err != nil {
					if !errors.Is(err, editor.ErrThemeNotFound) {
						return fmt.Errorf("loading theme: %w", err)
					}
					c.Logger.Warn("Theme file not found, using defaults", "path", themePath)
				}
				style, cfg = &s, &settings
			}

			if metricsAddr != "" {
				stop := startMetricsServer(cmd.Context(), c.Logger, metricsAddr)
				defer stop()
			}

			model := NewEditorModel(c.Logger, "demo", style, cfg)
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithReportFocus(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(os.Stdout),
			)

			if watchTheme && themePath != "" {
				watcher, err := editor.WatchTheme(themePath,
					func(s editor.Style, settings editor.Settings) {
						p.Send(themeMsg{style: s, cfg: settings})
					},
					func(err error) {
						c.Logger.Warn("Theme reload failed", "error", err)
					},
				)
				if err != nil {
					return fmt.Errorf("watching theme: %w", err)
				}
				go watcher.Run(cmd.Context())
				defer watcher.Close()
			}

			track := newProgress(c.Logger)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running session: %w", err)
			}
			track.done("Session closed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "theme TOML file (see \"theme init\")")
	cmd.Flags().BoolVarP(&watchTheme, "watch", "w", false, "reload the theme file on save")
	cmd.Flags().StringVar(&metricsAddr, "metrics", "", "serve prometheus metrics on this address (e.g. :9091)")
	return cmd
}

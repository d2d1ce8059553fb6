package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/voltlabhq/voltlab/internal/auth"
	"github.com/voltlabhq/voltlab/internal/config"
	"github.com/voltlabhq/voltlab/internal/logging"
	"github.com/voltlabhq/voltlab/internal/tui"
	"github.com/voltlabhq/voltlab/pkg/client"
)

var (
	cfg        *config.Config
	apiURLFlag string
)

var rootCmd = &cobra.Command{
	Use:   "voltlab",
	Short: "Voltlab community showcase in your terminal",
	Long: `Voltlab is a terminal client for the Voltlab community showcase:
browse what other makers are building, inspect a project, and submit
your own build for review.

Run 'voltlab' without arguments to launch the interactive TUI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if apiURLFlag != "" {
			cfg.APIURL = apiURLFlag
		}

		dir, err := config.Dir()
		if err != nil {
			return err
		}
		if err := logging.Setup(dir, cfg.LogLevel); err != nil {
			// A dead log file should not block the CLI; logging is already
			// silenced at this point.
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		}
		log.Debug().Str("command", cmd.Name()).Msg("voltlab started")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := auth.Load()
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		c := client.New(cfg.APIURL, sess.Token)
		log.Info().
			Str("api_url", cfg.APIURL).
			Bool("logged_in", sess.LoggedIn()).
			Msg("launching TUI")

		app := tui.NewApp(c, sess, version)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Error().Err(err).Msg("TUI error")
			return fmt.Errorf("run TUI: %w", err)
		}
		log.Info().Msg("TUI exited")
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Voltlab API base URL (overrides config)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(versionCmd)
}

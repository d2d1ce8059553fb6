package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/voltlabhq/voltlab/internal/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := auth.Load()
		if err == nil && !sess.LoggedIn() {
			fmt.Println("Already logged out.")
			return nil
		}

		if err := auth.Clear(); err != nil {
			return err
		}
		log.Info().Msg("logged out")
		fmt.Println("Logged out.")
		return nil
	},
}

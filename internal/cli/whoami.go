package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voltlabhq/voltlab/internal/auth"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := auth.Load()
		if err != nil {
			return err
		}
		if !sess.LoggedIn() {
			fmt.Println("Not logged in. Run 'voltlab login' first.")
			return nil
		}

		claims, err := auth.PeekClaims(sess.Token)
		if err != nil {
			// Opaque token; all we know is the stored user id.
			fmt.Printf("Logged in as %s\n", sess.UserID)
			return nil
		}

		subject := claims.Subject
		if subject == "" {
			subject = sess.UserID
		}
		fmt.Printf("Logged in as %s\n", subject)
		if !claims.ExpiresAt.IsZero() {
			fmt.Printf("Token expires %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
		}
		return nil
	},
}

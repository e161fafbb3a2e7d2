// Package cmd implements the command-line interface for contar.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/contar-cli/contar/auth"
	"github.com/contar-cli/contar/icon"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logoutCmd)

	logoutCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// logoutCmd removes stored cont.ar account credentials from the system keyring.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored cont.ar account credentials from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			confirm := survey.Confirm{
				Message: "Remove the stored cont.ar credentials?",
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		handleErr(auth.DeleteCredentials())
		fmt.Printf("%s Logged out\n", icon.Get(icon.Success))
	},
}

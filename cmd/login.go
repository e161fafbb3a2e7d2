// Package cmd implements the command-line interface for contar.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/contar-cli/contar/api"
	"github.com/contar-cli/contar/auth"
	"github.com/contar-cli/contar/icon"
	"github.com/contar-cli/contar/session"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("email", "e", "", "The cont.ar account email")
	loginCmd.Flags().Bool("no-verify", false, "Store the credentials without checking them against the API")
}

// loginCmd stores cont.ar account credentials in the system keyring.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store cont.ar account credentials in the system keyring",
	Long: `Store cont.ar account credentials in the system keyring.

The credentials are verified against the API before being stored,
unless the no-verify flag is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		email := lo.Must(cmd.Flags().GetString("email"))
		if email == "" {
			input := survey.Input{
				Message: "Email:",
			}
			handleErr(survey.AskOne(&input, &email, survey.WithValidator(survey.Required)))
		}

		var password string
		prompt := survey.Password{
			Message: "Password:",
		}
		handleErr(survey.AskOne(&prompt, &password, survey.WithValidator(survey.Required)))

		credentials := session.Credentials{Email: email, Password: password}

		if !lo.Must(cmd.Flags().GetBool("no-verify")) {
			client := api.New(session.New())
			handleErr(client.Authenticate(cmd.Context(), credentials))
		}

		handleErr(auth.SetCredentials(email, password))
		fmt.Printf("%s Logged in as %s\n", icon.Get(icon.Success), email)
	},
}

// Package cmd implements the command-line interface for rtgrab.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rtgrab-cli/rtgrab/auth"
	"github.com/rtgrab-cli/rtgrab/icon"
	"github.com/rtgrab-cli/rtgrab/key"
	"github.com/rtgrab-cli/rtgrab/util"
	"github.com/rtgrab-cli/rtgrab/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("username", "u", "", "The account username or email address")
	loginCmd.Flags().StringP("password", "p", "", "The account password (prompted interactively when omitted)")
}

// loginCmd stores the platform credential in the system keyring.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the platform credential in the system keyring",
	Long: `Store the platform credential in the system keyring.
The credential is exchanged for a session token on the next run; a FIRST-member
account unlocks episodes that are otherwise members-only.`,
	Run: func(cmd *cobra.Command, args []string) {
		credential := auth.Credentials{
			Username: lo.Must(cmd.Flags().GetString("username")),
			Password: lo.Must(cmd.Flags().GetString("password")),
		}

		if credential.Username == "" {
			input := survey.Input{Message: "Username or email:"}
			handleErr(survey.AskOne(&input, &credential.Username, survey.WithValidator(survey.Required)))
		}

		if credential.Password == "" {
			password := survey.Password{Message: "Password:"}
			handleErr(survey.AskOne(&password, &credential.Password, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetCredentials(credential))

		if !viper.GetBool(key.AuthUseKeyring) {
			viper.Set(key.AuthUseKeyring, true)
			switch err := viper.WriteConfig(); err.(type) {
			case viper.ConfigFileNotFoundError:
				handleErr(viper.SafeWriteConfig())
			default:
				handleErr(err)
			}
		}

		fmt.Printf("%s logged in as %s\n", icon.Get(icon.Success), credential.Username)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// logoutCmd removes the stored credential and the cached session token.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credential and the cached session token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteCredentials())
		_ = util.Delete(where.Session())

		fmt.Printf("%s logged out\n", icon.Get(icon.Success))
	},
}

package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the Sales Pulse API",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = promptLine("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptLine("Password: "); err != nil {
					return err
				}
			}
			if email == "" || password == "" {
				console.Notify.Warn("Please fill email and password")
				return errBlocked
			}

			sess, msg, err := console.Client.Login(cmd.Context(), email, password)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			if err := console.Sessions.Save(sess); err != nil {
				return err
			}
			console.Notify.Success(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := console.Sessions.Clear(); err != nil {
				return err
			}
			console.Notify.Success("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in operator",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}
			fmt.Printf("%s <%s> (%s)\n", sess.Name, sess.Email, sess.Role)
			return nil
		},
	}
}

package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"salespulse/models"
	"salespulse/render"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage console operator accounts",
	}
	cmd.AddCommand(newUsersListCmd(), newUsersAddCmd(), newUsersUpdateCmd(), newManagersCmd())
	return cmd
}

// newManagersCmd lists the manager ids the add/update forms expect.
func newManagersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "managers",
		Short: "List manager ids for --manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			managers, err := console.Client.Managers(cmd.Context())
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			for _, m := range managers {
				fmt.Printf("%4d  %s\n", m.IntValue(), m.Label)
			}
			return nil
		},
	}
}

var userColumns = []render.Column{
	{Key: "id", Title: "ID", Numeric: true},
	{Key: "name", Title: "Name"},
	{Key: "email", Title: "Email"},
	{Key: "role", Title: "Role"},
	{Key: "agent", Title: "Agent"},
	{Key: "manager", Title: "Manager"},
	{Key: "state", Title: "State"},
	{Key: "phone", Title: "Phone"},
	{Key: "active", Title: "Active"},
}

func newUsersListCmd() *cobra.Command {
	var flags gridFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List operator accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			users, err := console.Client.Users(cmd.Context())
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{
					strconv.Itoa(u.ID), u.Name, u.Email, u.Role, u.Agent,
					u.Manager, u.State, u.Phone, yesNo(u.Active.Bool()),
				})
			}
			return flags.render(render.NewGrid(userColumns, rows))
		},
	}
	flags.register(cmd)
	return cmd
}

type userFlags struct {
	name      string
	email     string
	password  string
	role      string
	agent     string
	managerID int
	stateID   int
	phone     string
	active    bool
}

func (f *userFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "full name")
	cmd.Flags().StringVar(&f.email, "email", "", "login email")
	cmd.Flags().StringVar(&f.password, "password", "", "password (prompted when omitted on create)")
	cmd.Flags().StringVar(&f.role, "role", "", "role (admin, manager, agent)")
	cmd.Flags().StringVar(&f.agent, "agent", "", "agent code")
	cmd.Flags().IntVar(&f.managerID, "manager", 0, "manager user id")
	cmd.Flags().IntVar(&f.stateID, "state", 0, "state id")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().BoolVar(&f.active, "active", true, "whether the account can log in")
}

func (f *userFlags) payload(userID int) models.UserPayload {
	return models.UserPayload{
		Name:                 f.name,
		Email:                f.email,
		Password:             f.password,
		PasswordConfirmation: f.password,
		Role:                 f.role,
		Agent:                f.agent,
		ManagerID:            strconv.Itoa(f.managerID),
		StateID:              strconv.Itoa(f.stateID),
		Phone:                f.phone,
		Active:               f.active,
		UserID:               userID,
	}
}

func newUsersAddCmd() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an operator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}
			if flags.role == "" {
				console.Notify.Warn("Please select role")
				return errBlocked
			}
			if flags.password == "" {
				if flags.password, err = promptLine("Password: "); err != nil {
					return err
				}
			}
			if flags.password == "" {
				console.Notify.Warn("Please fill the password fields")
				return errBlocked
			}
			msg, err := console.Client.CreateUser(cmd.Context(), flags.payload(sess.UserID))
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			console.Notify.Success(msg)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newUsersUpdateCmd() *cobra.Command {
	var flags userFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an operator account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			existing, err := console.Client.User(cmd.Context(), id)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			if !cmd.Flags().Changed("name") {
				flags.name = existing.Name
			}
			if !cmd.Flags().Changed("email") {
				flags.email = existing.Email
			}
			if !cmd.Flags().Changed("role") {
				flags.role = existing.Role
			}
			if !cmd.Flags().Changed("agent") {
				flags.agent = existing.Agent
			}
			if !cmd.Flags().Changed("manager") {
				flags.managerID = existing.ManagerID.Int()
			}
			if !cmd.Flags().Changed("state") {
				flags.stateID = existing.StateID.Int()
			}
			if !cmd.Flags().Changed("phone") {
				flags.phone = existing.Phone
			}
			if !cmd.Flags().Changed("active") {
				flags.active = existing.Active.Bool()
			}

			// Password stays unchanged unless explicitly provided.
			msg, err := console.Client.UpdateUser(cmd.Context(), id, flags.payload(sess.UserID))
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			console.Notify.Success(msg)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

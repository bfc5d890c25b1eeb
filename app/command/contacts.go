package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"salespulse/models"
	"salespulse/render"
)

func newContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage customer contacts",
	}
	cmd.AddCommand(newContactsListCmd(), newContactsShowCmd(), newContactsAddCmd(), newContactsUpdateCmd(), newStatesCmd())
	return cmd
}

// newStatesCmd lists the state ids the add/update forms expect.
func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List state ids for --state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			states, err := console.Client.States(cmd.Context())
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			for _, s := range states {
				fmt.Printf("%4d  %s\n", s.ID, s.Name)
			}
			return nil
		},
	}
}

var contactColumns = []render.Column{
	{Key: "id", Title: "ID", Numeric: true},
	{Key: "name", Title: "Name"},
	{Key: "address", Title: "Address"},
	{Key: "city", Title: "City"},
	{Key: "district", Title: "District"},
	{Key: "state", Title: "State"},
	{Key: "phone", Title: "Phone"},
	{Key: "pincode", Title: "Pincode"},
	{Key: "active", Title: "Active"},
}

func newContactsListCmd() *cobra.Command {
	var flags gridFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			contacts, err := console.Client.Contacts(cmd.Context())
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			rows := make([][]string, 0, len(contacts))
			for _, c := range contacts {
				rows = append(rows, []string{
					strconv.Itoa(c.ID), c.Name, c.Address, c.City, c.District,
					c.State, c.Phone, c.Pincode, yesNo(c.Active.Bool()),
				})
			}
			return flags.render(render.NewGrid(contactColumns, rows))
		},
	}
	flags.register(cmd)
	return cmd
}

func newContactsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := console.Client.Contact(cmd.Context(), id)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			fmt.Printf("ID:       %d\n", c.ID)
			fmt.Printf("Name:     %s\n", c.Name)
			fmt.Printf("Address:  %s\n", c.Address)
			fmt.Printf("City:     %s\n", c.City)
			fmt.Printf("District: %s\n", c.District)
			fmt.Printf("State:    %s\n", c.State)
			fmt.Printf("Phone:    %s\n", c.Phone)
			fmt.Printf("Pincode:  %s\n", c.Pincode)
			fmt.Printf("Active:   %s\n", yesNo(c.Active.Bool()))
			return nil
		},
	}
}

type contactFlags struct {
	name     string
	address  string
	city     string
	district string
	stateID  int
	phone    string
	pincode  string
	active   bool
}

func (f *contactFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "contact name")
	cmd.Flags().StringVar(&f.address, "address", "", "street address")
	cmd.Flags().StringVar(&f.city, "city", "", "city")
	cmd.Flags().StringVar(&f.district, "district", "", "district")
	cmd.Flags().IntVar(&f.stateID, "state", 0, "state id (see states on the server)")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.pincode, "pincode", "", "postal pincode")
	cmd.Flags().BoolVar(&f.active, "active", true, "whether the contact is active")
}

// payload uppercases the free-text identity fields the way the records
// are stored server-side.
func (f *contactFlags) payload(userID int) models.ContactPayload {
	return models.ContactPayload{
		Name:     strings.ToUpper(f.name),
		Address:  strings.ToUpper(f.address),
		City:     strings.ToUpper(f.city),
		District: strings.ToUpper(f.district),
		StateID:  strconv.Itoa(f.stateID),
		Phone:    f.phone,
		Pincode:  f.pincode,
		Active:   f.active,
		UserID:   userID,
	}
}

func newContactsAddCmd() *cobra.Command {
	var flags contactFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}
			if flags.name == "" {
				console.Notify.Warn("Please fill the name")
				return errBlocked
			}
			msg, err := console.Client.CreateContact(cmd.Context(), flags.payload(sess.UserID))
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

func newContactsUpdateCmd() *cobra.Command {
	var flags contactFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a contact",
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

			existing, err := console.Client.Contact(cmd.Context(), id)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			if !cmd.Flags().Changed("name") {
				flags.name = existing.Name
			}
			if !cmd.Flags().Changed("address") {
				flags.address = existing.Address
			}
			if !cmd.Flags().Changed("city") {
				flags.city = existing.City
			}
			if !cmd.Flags().Changed("district") {
				flags.district = existing.District
			}
			if !cmd.Flags().Changed("state") {
				flags.stateID = existing.StateID.Int()
			}
			if !cmd.Flags().Changed("phone") {
				flags.phone = existing.Phone
			}
			if !cmd.Flags().Changed("pincode") {
				flags.pincode = existing.Pincode
			}
			if !cmd.Flags().Changed("active") {
				flags.active = existing.Active.Bool()
			}

			msg, err := console.Client.UpdateContact(cmd.Context(), id, flags.payload(sess.UserID))
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

package command

import (
	"strconv"

	"github.com/spf13/cobra"

	"salespulse/models"
	"salespulse/render"
)

func newPurposesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purposes",
		Short: "Manage visit purposes",
	}
	cmd.AddCommand(newPurposesListCmd(), newPurposesAddCmd(), newPurposesUpdateCmd())
	return cmd
}

var purposeColumns = []render.Column{
	{Key: "id", Title: "ID", Numeric: true},
	{Key: "name", Title: "Name"},
	{Key: "active", Title: "Active"},
	{Key: "user", Title: "Created By"},
}

func newPurposesListCmd() *cobra.Command {
	var flags gridFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visit purposes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			purposes, err := console.Client.Purposes(cmd.Context())
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			rows := make([][]string, 0, len(purposes))
			for _, p := range purposes {
				rows = append(rows, []string{
					strconv.Itoa(p.ID), p.Name, yesNo(p.Active.Bool()), p.User,
				})
			}
			return flags.render(render.NewGrid(purposeColumns, rows))
		},
	}
	flags.register(cmd)
	return cmd
}

func newPurposesAddCmd() *cobra.Command {
	var name string
	var active bool
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a visit purpose",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}
			if name == "" {
				console.Notify.Warn("Please fill the name")
				return errBlocked
			}
			payload := models.PurposePayload{Name: name, Active: active, UserID: sess.UserID}
			msg, err := console.Client.CreatePurpose(cmd.Context(), payload)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			console.Notify.Success(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "purpose name")
	cmd.Flags().BoolVar(&active, "active", true, "whether the purpose is selectable")
	return cmd
}

func newPurposesUpdateCmd() *cobra.Command {
	var name string
	var active bool
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a visit purpose",
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

			existing, err := console.Client.Purpose(cmd.Context(), id)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			if !cmd.Flags().Changed("name") {
				name = existing.Name
			}
			if !cmd.Flags().Changed("active") {
				active = existing.Active.Bool()
			}

			payload := models.PurposePayload{Name: name, Active: active, UserID: sess.UserID}
			msg, err := console.Client.UpdatePurpose(cmd.Context(), id, payload)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			console.Notify.Success(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "purpose name")
	cmd.Flags().BoolVar(&active, "active", true, "whether the purpose is selectable")
	return cmd
}

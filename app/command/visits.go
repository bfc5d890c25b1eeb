package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"salespulse/api"
	"salespulse/models"
	"salespulse/render"
)

func newVisitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visits",
		Short: "Manage field visits and their photo evidence",
	}
	cmd.AddCommand(newVisitsListCmd(), newVisitsShowCmd(), newVisitsAddCmd(), newVisitsUpdateCmd())
	return cmd
}

var visitColumns = []render.Column{
	{Key: "id", Title: "ID", Numeric: true},
	{Key: "contact", Title: "Contact"},
	{Key: "purpose", Title: "Purpose"},
	{Key: "description", Title: "Description"},
	{Key: "response", Title: "Response"},
}

func newVisitsListCmd() *cobra.Command {
	var flags gridFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List field visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			visits, err := console.Client.Visits(cmd.Context())
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			rows := make([][]string, 0, len(visits))
			for _, v := range visits {
				rows = append(rows, []string{
					strconv.Itoa(v.ID), v.Contact, v.Purpose, v.Description, v.Response,
				})
			}
			return flags.render(render.NewGrid(visitColumns, rows))
		},
	}
	flags.register(cmd)
	return cmd
}

func newVisitsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one visit, including stored photo URLs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			v, err := console.Client.Visit(cmd.Context(), id)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			fmt.Printf("ID:          %d\n", v.ID)
			fmt.Printf("Contact:     %s\n", v.Contact)
			fmt.Printf("Purpose:     %s\n", v.Purpose)
			fmt.Printf("Description: %s\n", v.Description)
			fmt.Printf("Response:    %s\n", v.Response)
			for _, img := range v.VisitImages {
				fmt.Printf("Photo:       %s%s\n", console.Config.StorageBaseURL, img.ImagePath)
			}
			return nil
		},
	}
}

// optimizePhotos recompresses the local photo files into upload parts.
func optimizePhotos(paths []string) ([]api.FilePart, error) {
	parts := make([]api.FilePart, 0, len(paths))
	for _, path := range paths {
		data, name, err := console.Photos.OptimizeFile(path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, api.FilePart{Field: "visit_images[]", Name: name, Data: data})
	}
	return parts, nil
}

func newVisitsAddCmd() *cobra.Command {
	var (
		contactID   int
		purposeID   int
		description string
		response    string
		photos      []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a field visit with photo evidence",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}
			if contactID <= 0 {
				console.Notify.Warn("Please select the contact")
				return errBlocked
			}
			if purposeID <= 0 {
				console.Notify.Warn("Please select the purpose")
				return errBlocked
			}
			if len(photos) == 0 {
				console.Notify.Warn("Please load photos")
				return errBlocked
			}

			parts, err := optimizePhotos(photos)
			if err != nil {
				console.Notify.Warn(err.Error())
				return errBlocked
			}
			payload := models.VisitPayload{
				ContactID:   strconv.Itoa(contactID),
				PurposeID:   strconv.Itoa(purposeID),
				Description: description,
				Response:    response,
				UserID:      sess.UserID,
			}
			msg, err := console.Client.CreateVisit(cmd.Context(), payload, parts)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			console.Notify.Success(msg)
			return nil
		},
	}
	cmd.Flags().IntVar(&contactID, "contact", 0, "contact id")
	cmd.Flags().IntVar(&purposeID, "purpose", 0, "purpose id")
	cmd.Flags().StringVar(&description, "description", "", "what was discussed")
	cmd.Flags().StringVar(&response, "response", "", "the contact's response")
	cmd.Flags().StringArrayVar(&photos, "photo", nil, "photo file to attach (repeatable)")
	return cmd
}

func newVisitsUpdateCmd() *cobra.Command {
	var (
		contactID   int
		purposeID   int
		description string
		response    string
		photos      []string
		dropImages  []string
	)
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a visit; stored photos are kept unless dropped",
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

			existing, err := console.Client.Visit(cmd.Context(), id)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			if !cmd.Flags().Changed("contact") {
				contactID = existing.ContactID.Int()
			}
			if !cmd.Flags().Changed("purpose") {
				purposeID = existing.PurposeID.Int()
			}
			if !cmd.Flags().Changed("description") {
				description = existing.Description
			}
			if !cmd.Flags().Changed("response") {
				response = existing.Response
			}

			dropped := make(map[string]bool, len(dropImages))
			for _, path := range dropImages {
				dropped[path] = true
			}
			var kept []string
			for _, img := range existing.VisitImages {
				if !dropped[img.ImagePath] {
					kept = append(kept, img.ImagePath)
				}
			}
			if len(kept) == 0 && len(photos) == 0 {
				console.Notify.Warn("Please load photos")
				return errBlocked
			}

			parts, err := optimizePhotos(photos)
			if err != nil {
				console.Notify.Warn(err.Error())
				return errBlocked
			}
			payload := models.VisitPayload{
				ContactID:      strconv.Itoa(contactID),
				PurposeID:      strconv.Itoa(purposeID),
				Description:    description,
				Response:       response,
				UserID:         sess.UserID,
				ExistingImages: kept,
			}
			msg, err := console.Client.UpdateVisit(cmd.Context(), id, payload, parts)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			console.Notify.Success(msg)
			return nil
		},
	}
	cmd.Flags().IntVar(&contactID, "contact", 0, "contact id")
	cmd.Flags().IntVar(&purposeID, "purpose", 0, "purpose id")
	cmd.Flags().StringVar(&description, "description", "", "what was discussed")
	cmd.Flags().StringVar(&response, "response", "", "the contact's response")
	cmd.Flags().StringArrayVar(&photos, "photo", nil, "new photo file to attach (repeatable)")
	cmd.Flags().StringArrayVar(&dropImages, "drop-image", nil, "stored image path to remove (repeatable)")
	return cmd
}

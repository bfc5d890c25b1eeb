package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"salespulse/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change console preferences",
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.File()
			if err != nil {
				return err
			}
			console.Notify.Info("config file: " + path)
			cfg := console.Config
			fmt.Printf("api_base_url:         %s\n", cfg.APIBaseURL)
			fmt.Printf("storage_base_url:     %s\n", cfg.StorageBaseURL)
			fmt.Printf("page_size:            %d\n", cfg.PageSize)
			fmt.Printf("pdf_rows_per_page:    %d\n", cfg.PDFRowsPerPage)
			fmt.Printf("photo_max_dimension:  %d\n", cfg.PhotoMaxDim)
			fmt.Printf("photo_jpeg_quality:   %d\n", cfg.PhotoQuality)
			fmt.Printf("chrome_path:          %s\n", cfg.ChromePath)
			fmt.Printf("http_timeout_seconds: %d\n", cfg.HTTPTimeoutSec)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set one preference and save the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			cfg := console.Config

			atoi := func() (int, error) {
				n, err := strconv.Atoi(value)
				if err != nil || n <= 0 {
					return 0, fmt.Errorf("invalid value %q for %s", value, key)
				}
				return n, nil
			}

			var err error
			switch key {
			case "api_base_url":
				cfg.APIBaseURL = value
			case "storage_base_url":
				cfg.StorageBaseURL = value
			case "chrome_path":
				cfg.ChromePath = value
			case "page_size":
				cfg.PageSize, err = atoi()
			case "pdf_rows_per_page":
				cfg.PDFRowsPerPage, err = atoi()
			case "photo_max_dimension":
				cfg.PhotoMaxDim, err = atoi()
			case "photo_jpeg_quality":
				cfg.PhotoQuality, err = atoi()
			case "http_timeout_seconds":
				cfg.HTTPTimeoutSec, err = atoi()
			default:
				return fmt.Errorf("unknown config key %q", key)
			}
			if err != nil {
				console.Notify.Warn(err.Error())
				return errBlocked
			}

			if err := config.Save(cfg); err != nil {
				return err
			}
			console.Notify.Success(fmt.Sprintf("%s saved", key))
			return nil
		},
	}
}

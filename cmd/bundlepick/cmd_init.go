package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/bundlepick/bundlepick/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.File()

		if _, err := os.Stat(path); err == nil {
			var overwrite bool
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Overwrite existing config at %s?", path)).
						Description("Your current settings will be replaced with the defaults").
						Value(&overwrite),
				),
			).Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Println("Leaving existing config untouched.")
				return nil
			}
		}

		data, err := config.Marshal(config.Default())
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}

		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

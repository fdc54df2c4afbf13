package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devsetup/internal/assets"
)

// listCmd prints the bundled tools and what each one installs, straight
// from the embedded descriptors.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled tool setups",
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle := assets.Templates()
		tools, err := assets.Tools(bundle)
		if err != nil {
			return err
		}

		for _, tool := range tools {
			d, err := assets.LoadDescriptor(bundle, tool)
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %s\n", d.Name, d.Summary)
			for _, f := range d.Files {
				fmt.Printf("         copies %s\n", f)
			}
			for _, h := range d.Hooks {
				fmt.Printf("         hook .husky/%s: %s\n", h.Name, h.Command)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var updateFile string

var updateCmd = &cobra.Command{
	Use:   "update <resource> <id> -f <file>",
	Short: "Update an entry from a YAML or JSON file",
	Long: `Update an existing entry. The file holds only the fields to change;
everything else keeps its stored value.

Example:
  admin update certifications 8f14e45f-... -f cert.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolve(args[0])
		if err != nil {
			return err
		}
		return r.update(context.Background(), args[1], updateFile)
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "file holding the changed fields")
	updateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(updateCmd)
}

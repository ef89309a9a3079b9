package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var createFile string

var createCmd = &cobra.Command{
	Use:   "create <resource> -f <file>",
	Short: "Create an entry from a YAML or JSON file",
	Long: `Create a new entry from a file. The file uses the API's field names
and must not carry an id; order_index defaults to the end of the list.

Example:
  admin create certifications -f cert.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolve(args[0])
		if err != nil {
			return err
		}
		return r.create(context.Background(), createFile)
	},
}

func init() {
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "file holding the new entry")
	createCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(createCmd)
}

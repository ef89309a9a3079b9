package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List entries of a collection",
	Long: `List every entry of a collection, one per line: id, order index,
then the entry as JSON.

Examples:
  admin list certifications
  admin list projects`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolve(args[0])
		if err != nil {
			return err
		}
		return r.list(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <resource> <id>",
	Short: "Delete an entry",
	Long: `Delete one entry by id. This cannot be undone; pass --yes to
confirm. Deleting a learning path or progress category also removes its
steps or items.

Example:
  admin delete milestones 8f14e45f-... --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes {
			return fmt.Errorf("refusing to delete %s without --yes", args[1])
		}
		r, err := resolve(args[0])
		if err != nil {
			return err
		}
		return r.remove(context.Background(), args[1])
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "confirm the deletion")
	rootCmd.AddCommand(deleteCmd)
}

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <resource> <pos> <pos>",
	Short: "Swap two entries' display order",
	Long: `Swap the order of the entries at two list positions (zero-based, as
printed by "admin list"). The swap is atomic: either both entries move or
neither does.

Example:
  admin reorder projects 0 2`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("position %q is not a number", args[1])
		}
		j, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("position %q is not a number", args[2])
		}
		r, err := resolve(args[0])
		if err != nil {
			return err
		}
		return r.reorder(context.Background(), i, j)
	},
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}

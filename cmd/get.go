package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdGet())
}

func cmdGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Fetch lyrics by their id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			printResult(engine.FetchByID(cmd.Context(), id), false)
			return nil
		},
	}
}

func parseID(text string) (int, error) {
	id, err := strconv.Atoi(text)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid lyrics id: %s", text)
	}
	return id, nil
}

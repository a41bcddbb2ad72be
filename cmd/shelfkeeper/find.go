package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfkeeper/lending-catalog-go/catalog"
)

var findCmd = &cobra.Command{
	Use:   "find [title]",
	Short: "Find the first record matching a title (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		title := args[0]

		collection, err := buildCollection(ctx, catalogPath)
		if err != nil {
			return err
		}

		record, err := collection.FindByTitle(ctx, title)
		if err != nil {
			if errors.Is(err, catalog.ErrRecordNotFound) {
				return fmt.Errorf("no record with title %q in %s", title, catalogPath)
			}

			return err
		}

		fmt.Println(record.Describe())

		return nil
	},
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfkeeper/lending-catalog-go/catalog"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a borrow/return walkthrough against the loaded catalog",
	Long: `Loads the catalog and runs a scripted lending session: borrow the first
available record, attempt to borrow it again, return it, and list what is
available after each step. Nothing is written back to the catalog file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		collection, err := buildCollection(ctx, catalogPath)
		if err != nil {
			return err
		}

		records, err := collection.ListAll(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Catalog:")
		for _, record := range records {
			fmt.Printf("  %s\n", record.Describe())
		}

		available, err := collection.ListAvailable(ctx)
		if err != nil {
			return err
		}

		if len(available) == 0 {
			fmt.Println("\nNo record is available to borrow.")
			return nil
		}

		subject := available[0]

		fmt.Printf("\nBorrowing %q ...\n", subject.Title())
		if err := subject.Borrow(); err != nil {
			return err
		}
		fmt.Printf("  %s\n", subject.Describe())

		fmt.Printf("\nBorrowing %q again ...\n", subject.Title())
		if err := subject.Borrow(); !errors.Is(err, catalog.ErrRecordAlreadyBorrowed) {
			return fmt.Errorf("expected the second borrow to fail, got: %v", err)
		}
		fmt.Printf("  rejected: %s\n", catalog.ErrRecordAlreadyBorrowed)

		fmt.Printf("\nReturning %q ...\n", subject.Title())
		subject.Return()
		fmt.Printf("  %s\n", subject.Describe())

		available, err = collection.ListAvailable(ctx)
		if err != nil {
			return err
		}

		fmt.Println("\nAvailable after the session:")
		for _, record := range available {
			fmt.Printf("  %s\n", record.Describe())
		}

		return nil
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/shelfkeeper/lending-catalog-go/catalog"
)

var (
	listAvailableOnly bool
	listFormat        string
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the records of the catalog in insertion order",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		collection, err := buildCollection(ctx, catalogPath)
		if err != nil {
			return err
		}

		var records []*catalog.Record
		if listAvailableOnly {
			records, err = collection.ListAvailable(ctx)
		} else {
			records, err = collection.ListAll(ctx)
		}
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No matching records found.")
			return nil
		}

		switch listFormat {
		case formatJSON:
			return renderJSON(records)
		case formatTable:
			renderTable(records)
			return nil
		default:
			return fmt.Errorf("unknown format: %s (must be '%s' or '%s')", listFormat, formatTable, formatJSON)
		}
	},
}

func renderTable(records []*catalog.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Title"),
		text.FgGreen.Sprintf("Author"),
		text.FgGreen.Sprintf("ISBN"),
		text.FgGreen.Sprintf("Status"),
	})

	for _, record := range records {
		t.AppendRow(table.Row{
			record.Title(),
			record.Author(),
			record.ISBN(),
			record.Status(),
		})
	}

	t.Render()
}

func renderJSON(records []*catalog.Record) error {
	data, err := jsoniter.ConfigFastest.MarshalIndent(catalog.ViewsOf(records), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	fmt.Println(string(data))

	return nil
}

func init() {
	listCmd.Flags().BoolVar(&listAvailableOnly, "available", false, "Only list records that can currently be borrowed")
	listCmd.Flags().StringVar(&listFormat, "format", formatTable, "Output format (table, json)")
}

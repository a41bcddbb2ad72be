package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/shelfkeeper/lending-catalog-go/catalog"
	"github.com/shelfkeeper/lending-catalog-go/catalog/memoryengine"
	"github.com/shelfkeeper/lending-catalog-go/catalog/zapadapters"
)

// catalogFile is the YAML layout of a catalog seed file:
//
//	records:
//	  - title: "1984"
//	    author: George Orwell
//	    isbn: 978-0-452-28423-4
//	  - title: Brave New World
//	    author: Aldous Huxley
//	    isbn: 978-0-06-085052-4
//	    borrowed: true
type catalogFile struct {
	Records []recordSeed `yaml:"records"`
}

type recordSeed struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	ISBN     string `yaml:"isbn"`
	Borrowed bool   `yaml:"borrowed"`
}

// loadSeedFile reads and parses the catalog YAML file.
func loadSeedFile(path string) (catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalogFile{}, fmt.Errorf("failed to read catalog file (%s): %w", path, err)
	}

	var seed catalogFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return catalogFile{}, fmt.Errorf("failed to parse catalog YAML (%s): %w", path, err)
	}

	return seed, nil
}

// buildCollection parses the catalog file and loads its records into a fresh
// in-memory collection.
func buildCollection(ctx context.Context, path string) (catalog.Collection, error) {
	seed, err := loadSeedFile(path)
	if err != nil {
		return catalog.Collection{}, err
	}

	zapLogger := logger
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}

	store, err := memoryengine.NewStore(
		memoryengine.WithLogger(zapadapters.NewZapLogger(zapLogger)),
	)
	if err != nil {
		return catalog.Collection{}, err
	}

	collection, err := catalog.NewCollection(
		store,
		catalog.WithLogger(zapadapters.NewZapLogger(zapLogger)),
	)
	if err != nil {
		return catalog.Collection{}, err
	}

	for _, entry := range seed.Records {
		record := catalog.BuildRecord(entry.Title, entry.Author, entry.ISBN)
		if entry.Borrowed {
			if err := record.Borrow(); err != nil {
				return catalog.Collection{}, err
			}
		}

		if err := collection.AddRecord(ctx, record); err != nil {
			return catalog.Collection{}, err
		}
	}

	return collection, nil
}

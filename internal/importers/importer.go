// Package importers loads catalog data from product files on disk into
// the database. Files are YAML documents holding a list of products.
package importers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/progress"
)

// productFile is the on-disk format of a product seed file.
type productFile struct {
	Products []productRecord `yaml:"products"`
}

// productRecord mirrors catalog.Product with YAML field names.
type productRecord struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Image       string  `yaml:"image"`
	Rating      float64 `yaml:"rating"`
	InStock     *bool   `yaml:"in_stock"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Promoted    bool    `yaml:"promoted"`
}

// Importer inserts products from seed files into the catalog.
type Importer struct {
	catalog  *catalog.Store
	reporter progress.Reporter
}

// New creates an Importer. The reporter may be nil for silent imports.
func New(store *catalog.Store, reporter progress.Reporter) *Importer {
	return &Importer{catalog: store, reporter: reporter}
}

// FindFiles resolves the glob patterns relative to root and returns the
// matching file paths, sorted and deduplicated.
func FindFiles(root string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS(root), filepath.ToSlash(pattern))
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			full := filepath.Join(root, filepath.FromSlash(m))
			if !seen[full] {
				seen[full] = true
				files = append(files, full)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// ImportFiles parses each seed file and inserts its products. It returns
// the number of products imported.
func (i *Importer) ImportFiles(ctx context.Context, paths []string) (int, error) {
	var records []productRecord
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		var pf productFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return 0, fmt.Errorf("parsing %s: %w", path, err)
		}
		records = append(records, pf.Products...)
	}

	if i.reporter != nil {
		i.reporter.Start(len(records))
		defer i.reporter.Finish()
	}

	imported := 0
	for n, rec := range records {
		if rec.Name == "" {
			return imported, fmt.Errorf("product %d has no name", n+1)
		}
		inStock := true
		if rec.InStock != nil {
			inStock = *rec.InStock
		}
		p := catalog.Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Price:       rec.Price,
			Image:       rec.Image,
			Rating:      rec.Rating,
			InStock:     inStock,
			Description: rec.Description,
			Category:    rec.Category,
			Promoted:    rec.Promoted,
		}
		if err := i.catalog.Insert(ctx, p); err != nil {
			return imported, fmt.Errorf("inserting %q: %w", rec.Name, err)
		}
		imported++
		if i.reporter != nil {
			i.reporter.Update(imported, rec.Name)
		}
	}
	return imported, nil
}

// Import resolves patterns under root and imports every matching file.
func (i *Importer) Import(ctx context.Context, root string, patterns []string) (int, error) {
	files, err := FindFiles(root, patterns)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no seed files match %v under %s", patterns, root)
	}
	return i.ImportFiles(ctx, files)
}

// Package importer loads demo catalog products from CSV exports.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/demo"
	"storefront/internal/domain"
)

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and upserts demo products.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
	now         func() time.Time
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type csvRow struct {
	ID        string
	Title     string
	Desc      string
	Price     string
	CompareAt string
	Tags      []string
	ImageURLs []string
}

// Run parses CSV rows and upserts products grouped by product id.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.ID != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows (images) belong to the current product.
		if current != nil && len(row.ImageURLs) > 0 {
			current.ImageURLs = append(current.ImageURLs, row.ImageURLs...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.ID == "" || row.Title == "" || row.Price == "" {
		return fmt.Errorf("invalid product row (missing required fields) for id %q: %w", row.ID, domain.ErrValidation)
	}
	if !validID.MatchString(row.ID) {
		return fmt.Errorf("invalid product id %q (allowed: letters, digits, '-', '_'): %w", row.ID, domain.ErrValidation)
	}
	price, err := parseAmount(row.Price, row.ID)
	if err != nil {
		return err
	}
	if row.CompareAt != "" {
		// The compare-at amount prices the smallest size and becomes the range minimum.
		compareAt, err := parseAmount(row.CompareAt, row.ID)
		if err != nil {
			return err
		}
		if compareAt.GreaterThan(price) {
			return fmt.Errorf("compareAt %s exceeds price %s for id %q: %w", row.CompareAt, row.Price, row.ID, domain.ErrValidation)
		}
	}

	p := demo.MakeProduct(demo.ProductSeed{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Desc,
		Price:       row.Price,
		CompareAt:   row.CompareAt,
		ImageText:   row.Title,
		ImageURLs:   row.ImageURLs,
		Tags:        row.Tags,
	}, i.now())

	if _, err := i.productRepo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("upsert product %q: %w", row.ID, err)
	}
	return nil
}

// LoadCatalog builds a demo catalog whose products come from the CSV file at
// path. Collections, pages and menus keep their built-in content.
func LoadCatalog(ctx context.Context, path string) (*demo.Catalog, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	catalog := demo.NewEmptyCatalog()
	n, err := NewCSVImporter(f, catalog).Run(ctx)
	if err != nil {
		return nil, n, err
	}
	if n == 0 {
		return nil, 0, fmt.Errorf("catalog file %s has no products: %w", path, domain.ErrValidation)
	}
	return catalog, n, nil
}

func parseAmount(amount, id string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q for id %q: %w", amount, id, domain.ErrValidation)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %q for id %q: %w", amount, id, domain.ErrValidation)
	}
	return d, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	id := pick(record, index, "id")
	imageURL := pick(record, index, "image")

	if id == "" && imageURL == "" {
		return nil
	}

	row := &csvRow{
		ID:        id,
		Title:     pick(record, index, "title"),
		Desc:      pick(record, index, "description"),
		Price:     pick(record, index, "price"),
		CompareAt: pick(record, index, "compareAt"),
	}
	for _, tag := range strings.Split(pick(record, index, "tags"), ";") {
		if tag = strings.TrimSpace(tag); tag != "" {
			row.Tags = append(row.Tags, tag)
		}
	}
	if imageURL != "" {
		row.ImageURLs = []string{imageURL}
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/service/storefront"
)

func demoOpener(t *testing.T) opener {
	t.Helper()
	return func(ctx context.Context) (*storefront.Service, error) {
		return open(ctx, config.Config{}, nil)
	}
}

func execute(t *testing.T, o opener, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(o)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProductsCommand(t *testing.T) {
	out, err := execute(t, demoOpener(t), "products", "--query", "serum")
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	var products []domain.Product
	if err := json.Unmarshal([]byte(out), &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 serums, got %d", len(products))
	}
}

func TestProductCommand_IncludesExtras(t *testing.T) {
	out, err := execute(t, demoOpener(t), "product", "1")
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	if !strings.Contains(out, `"product"`) || !strings.Contains(out, `"subtitle"`) {
		t.Fatalf("unexpected output %s", out)
	}

	if _, err := execute(t, demoOpener(t), "product", "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestContentCommands(t *testing.T) {
	cases := map[string][]string{
		"collections":         {"collections"},
		"collection-products": {"collection-products", "serums", "--sort", "PRICE"},
		"menu":                {"menu", "next-js-frontend-header-menu"},
		"page":                {"page", "about"},
		"pages":               {"pages"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, demoOpener(t), args...)
			if err != nil {
				t.Fatalf("%v: %v", args, err)
			}
			if !json.Valid([]byte(out)) {
				t.Fatalf("expected JSON output, got %s", out)
			}
		})
	}
}

func TestCheckoutCommand_NotConfigured(t *testing.T) {
	_, err := execute(t, demoOpener(t), "checkout", "cart-1")
	if !errors.Is(err, domain.ErrConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestCatalogValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	data := "id,title,price,tags\n1,Gentle Wash,12.00,cleanser\n2,Night Serum,30.00,serum\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := execute(t, nil, "catalog", "validate", "--file", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	var got summary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Products != 2 || got.Collections["cleansers"] != 1 || got.Collections["serums"] != 1 {
		t.Fatalf("unexpected summary %+v", got)
	}

	if _, err := execute(t, nil, "catalog", "validate"); err == nil {
		t.Fatalf("expected missing --file to fail")
	}
}

package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"storefront/internal/demo"
	"storefront/internal/domain"
	"storefront/internal/importer"
	"storefront/internal/service/storefront"
)

type opener func(ctx context.Context) (*storefront.Service, error)

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Inspect the storefront catalog and content",
		SilenceUsage: true,
	}

	root.AddCommand(
		newProductsCmd(open),
		newProductCmd(open),
		newCollectionsCmd(open),
		newCollectionProductsCmd(open),
		newMenuCmd(open),
		newPageCmd(open),
		newPagesCmd(open),
		newCheckoutCmd(open),
		newCatalogCmd(),
	)
	return root
}

// run opens the facade and prints whatever fn returns as indented JSON.
func run(open opener, fn func(ctx context.Context, svc *storefront.Service) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		svc, err := open(ctx)
		if err != nil {
			return err
		}
		out, err := fn(ctx, svc)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newProductsCmd(open opener) *cobra.Command {
	var q domain.ProductQuery
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered by a search query",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&q.Query, "query", "q", "", "Search query")
	cmd.Flags().StringVar(&q.SortKey, "sort", "", "Sort key (RELEVANCE, PRICE, CREATED_AT, BEST_SELLING)")
	cmd.Flags().BoolVar(&q.Reverse, "reverse", false, "Reverse the sort order")
	cmd.RunE = run(open, func(ctx context.Context, svc *storefront.Service) (any, error) {
		return svc.GetProducts(ctx, q)
	})
	return cmd
}

func newProductCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product <handle>",
		Short: "Show one product with its extended content",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		return run(open, func(ctx context.Context, svc *storefront.Service) (any, error) {
			p, err := svc.GetProduct(ctx, args[0])
			if err != nil {
				return nil, err
			}
			return struct {
				Product *domain.Product     `json:"product"`
				Extras  domain.ProductExtra `json:"extras"`
			}{p, svc.ProductExtras(ctx, p.ID)}, nil
		})(c, args)
	}
	return cmd
}

func newCollectionsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List collections",
		Args:  cobra.NoArgs,
		RunE: run(open, func(ctx context.Context, svc *storefront.Service) (any, error) {
			return svc.GetCollections(ctx)
		}),
	}
}

func newCollectionProductsCmd(open opener) *cobra.Command {
	var q domain.CollectionProductsQuery
	cmd := &cobra.Command{
		Use:   "collection-products <handle>",
		Short: "List the products of a collection",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&q.SortKey, "sort", "", "Sort key")
	cmd.Flags().BoolVar(&q.Reverse, "reverse", false, "Reverse the sort order")
	cmd.RunE = func(c *cobra.Command, args []string) error {
		q.Collection = args[0]
		return run(open, func(ctx context.Context, svc *storefront.Service) (any, error) {
			return svc.GetCollectionProducts(ctx, q)
		})(c, args)
	}
	return cmd
}

func newMenuCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu <handle>",
		Short: "Show a navigation menu",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		return run(open, func(ctx context.Context, svc *storefront.Service) (any, error) {
			return svc.GetMenu(ctx, args[0])
		})(c, args)
	}
	return cmd
}

func newPageCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page <handle>",
		Short: "Show a content page",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		return run(open, func(ctx context.Context, svc *storefront.Service) (any, error) {
			return svc.GetPage(ctx, args[0])
		})(c, args)
	}
	return cmd
}

func newPagesCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List content pages",
		Args:  cobra.NoArgs,
		RunE: run(open, func(ctx context.Context, svc *storefront.Service) (any, error) {
			return svc.GetPages(ctx)
		}),
	}
}

func newCheckoutCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout <cart-id>",
		Short: "Request hosted checkout redirect URLs for a backend cart",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		return run(open, func(ctx context.Context, svc *storefront.Service) (any, error) {
			return svc.CheckoutRedirect(ctx, args[0])
		})(c, args)
	}
	return cmd
}

func newCatalogCmd() *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Work with demo catalog files",
	}

	var file string
	validate := &cobra.Command{
		Use:   "validate",
		Short: "Parse a catalog CSV and report how many products it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			loaded, n, err := importer.LoadCatalog(ctx, file)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), catalogSummary(file, n, loaded))
		},
	}
	validate.Flags().StringVarP(&file, "file", "f", "", "Path to the catalog CSV")
	_ = validate.MarkFlagRequired("file")

	catalog.AddCommand(validate)
	return catalog
}

type summary struct {
	File        string         `json:"file"`
	Products    int            `json:"products"`
	Collections map[string]int `json:"collections"`
}

func catalogSummary(file string, n int, c *demo.Catalog) summary {
	s := summary{File: file, Products: n, Collections: map[string]int{}}
	for _, col := range c.Collections() {
		s.Collections[col.Handle] = len(c.CollectionProducts(col.Handle))
	}
	return s
}

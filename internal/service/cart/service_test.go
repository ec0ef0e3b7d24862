package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"storefront/internal/demo"
	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newEngine(opts Options) (*Service, *demo.Catalog) {
	catalog := demo.NewCatalog()
	return New(cartrepo.NewMemory(), catalog, opts, nil), catalog
}

func assertTotals(t *testing.T, c *domain.Cart) {
	t.Helper()
	qty := 0
	sum := domain.ZeroMoney(domain.DefaultCurrency).Amount
	for _, l := range c.Lines {
		qty += l.Quantity
		sum = sum.Add(l.Cost.TotalAmount.Amount)
	}
	if c.TotalQuantity != qty {
		t.Fatalf("totalQuantity %d, lines sum %d", c.TotalQuantity, qty)
	}
	if c.Cost.SubtotalAmount.String() != sum.StringFixed(2) {
		t.Fatalf("subtotal %s, lines sum %s", c.Cost.SubtotalAmount, sum.StringFixed(2))
	}
}

func TestService_CreateIsUnpersisted(t *testing.T) {
	svc, _ := newEngine(DefaultOptions())
	c, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID != "" || len(c.Lines) != 0 || c.Cost.TotalAmount.String() != "0.00" {
		t.Fatalf("unexpected empty cart %+v", c)
	}
	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for empty id, got %v", err)
	}
}

func TestService_AddScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEngine(DefaultOptions())

	c, err := svc.Add(ctx, "", []domain.CartLineInput{{MerchandiseID: "1-v2", Quantity: 2, ProductID: "1"}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.ID != "demo-cart-1" {
		t.Fatalf("expected demo-cart-1, got %q", c.ID)
	}
	if len(c.Lines) != 1 || c.Lines[0].ID != "demo-line-1" || c.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines %+v", c.Lines)
	}
	if got := c.Lines[0].Cost.TotalAmount.String(); got != "68.00" {
		t.Fatalf("expected line total 68.00, got %s", got)
	}
	if c.TotalQuantity != 2 || c.Cost.TotalTaxAmount.String() != "5.44" || c.Cost.TotalAmount.String() != "73.44" {
		t.Fatalf("unexpected cost %+v qty %d", c.Cost, c.TotalQuantity)
	}
	if c.Lines[0].Merchandise.Product == nil || c.Lines[0].Merchandise.Product.ID != "1" {
		t.Fatalf("expected merchandise to reference product 1")
	}

	c, err = svc.Add(ctx, c.ID, []domain.CartLineInput{{MerchandiseID: "1-v2", Quantity: 1}})
	if err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 3 {
		t.Fatalf("expected single line with quantity 3, got %+v", c.Lines)
	}
	if got := c.Lines[0].Cost.TotalAmount.String(); got != "102.00" {
		t.Fatalf("expected line total 102.00, got %s", got)
	}
	if c.Cost.TotalAmount.String() != "110.16" {
		t.Fatalf("expected total 110.16, got %s", c.Cost.TotalAmount)
	}
	assertTotals(t, c)

	stored, err := svc.Get(ctx, c.ID)
	if err != nil || stored.TotalQuantity != 3 {
		t.Fatalf("Get: %+v %v", stored, err)
	}
}

func TestService_AddSkipsUnknownLines(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEngine(DefaultOptions())

	c, err := svc.Add(ctx, "", []domain.CartLineInput{
		{MerchandiseID: "nope", Quantity: 1},
		{MerchandiseID: "2-v9", Quantity: 1, ProductID: "2"},
		{MerchandiseID: "3-v1", Quantity: 1, ProductID: "404"},
		{MerchandiseID: "2-v1", Quantity: 0},
		{MerchandiseID: "2-v1", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(c.Lines) != 1 || c.Lines[0].Merchandise.ID != "2-v1" {
		t.Fatalf("expected only 2-v1, got %+v", c.Lines)
	}
	if c.Cost.SubtotalAmount.String() != "44.00" {
		t.Fatalf("expected subtotal 44.00, got %s", c.Cost.SubtotalAmount)
	}
}

func TestService_AddWithOnlySkippedLines(t *testing.T) {
	ctx := context.Background()
	skipped := []domain.CartLineInput{{MerchandiseID: "nope", Quantity: 1}}

	legacy, _ := newEngine(DefaultOptions())
	c, err := legacy.Add(ctx, "", skipped)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.ID != "demo-cart-1" || len(c.Lines) != 0 {
		t.Fatalf("expected stored empty demo-cart-1, got %+v", c)
	}
	if _, err := legacy.Get(ctx, c.ID); err != nil {
		t.Fatalf("expected empty cart to be stored with legacy option, got %v", err)
	}

	opts := DefaultOptions()
	opts.LegacyStoreEmptyAdd = false
	strict, _ := newEngine(opts)
	c, err = strict.Add(ctx, "", skipped)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.ID != "" || len(c.Lines) != 0 || c.Cost.TotalAmount.String() != "0.00" {
		t.Fatalf("expected unstored empty cart, got %+v", c)
	}
	if _, err := strict.Get(ctx, "demo-cart-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected nothing stored, got %v", err)
	}

	// A later add with a real line still gets a fresh id.
	c, err = strict.Add(ctx, "", []domain.CartLineInput{{MerchandiseID: "4-v2", Quantity: 1}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.ID != "demo-cart-2" || len(c.Lines) != 1 {
		t.Fatalf("expected demo-cart-2 with one line, got %+v", c)
	}
}

func TestService_AddUnknownCartCreatesNewID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEngine(DefaultOptions())

	c, err := svc.Add(ctx, "demo-cart-999", []domain.CartLineInput{{MerchandiseID: "4-v2", Quantity: 1}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.ID != "demo-cart-1" {
		t.Fatalf("expected freshly generated id, got %q", c.ID)
	}
}

func TestService_RemoveLastLineDeletesCart(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEngine(DefaultOptions())

	c, _ := svc.Add(ctx, "", []domain.CartLineInput{
		{MerchandiseID: "1-v2", Quantity: 1},
		{MerchandiseID: "5-v2", Quantity: 2},
	})

	c, err := svc.Remove(ctx, c.ID, []string{c.Lines[0].ID})
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(c.Lines) != 1 || c.Cost.SubtotalAmount.String() != "58.00" {
		t.Fatalf("unexpected cart after remove %+v", c)
	}

	gone, err := svc.Remove(ctx, c.ID, []string{c.Lines[0].ID})
	if err != nil || gone != nil {
		t.Fatalf("expected nil cart after removing last line, got %+v %v", gone, err)
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	missing, err := svc.Remove(ctx, "demo-cart-404", []string{"x"})
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unknown cart, got %+v %v", missing, err)
	}
}

func TestService_UpdateQuantities(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEngine(DefaultOptions())

	c, _ := svc.Add(ctx, "", []domain.CartLineInput{
		{MerchandiseID: "1-v2", Quantity: 2},
		{MerchandiseID: "8-v3", Quantity: 1},
	})
	other := c.Lines[1].Cost.TotalAmount.String()

	c, err := svc.Update(ctx, c.ID, []domain.CartLineUpdate{
		{ID: c.Lines[0].ID, MerchandiseID: "1-v2", Quantity: 0},
		{ID: "demo-line-404", Quantity: 5},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(c.Lines) != 1 || c.Lines[0].Cost.TotalAmount.String() != other {
		t.Fatalf("expected remaining line untouched, got %+v", c.Lines)
	}

	c, err = svc.Update(ctx, c.ID, []domain.CartLineUpdate{{ID: c.Lines[0].ID, Quantity: 3}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	// 8-v3 is 22.00 x 1.6 = 35.20 per unit.
	if c.Lines[0].Cost.TotalAmount.String() != "105.60" || c.TotalQuantity != 3 {
		t.Fatalf("unexpected line %+v", c.Lines[0])
	}
	assertTotals(t, c)

	gone, err := svc.Update(ctx, c.ID, []domain.CartLineUpdate{{ID: c.Lines[0].ID, Quantity: 0}})
	if err != nil || gone != nil {
		t.Fatalf("expected nil after zeroing last line, got %+v %v", gone, err)
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_UpdateUnknownCart(t *testing.T) {
	ctx := context.Background()

	svc, _ := newEngine(DefaultOptions())
	shell, err := svc.Update(ctx, "demo-cart-77", []domain.CartLineUpdate{{ID: "x", Quantity: 1}})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if shell.ID != "demo-cart-77" || len(shell.Lines) != 0 {
		t.Fatalf("expected empty shell, got %+v", shell)
	}
	if _, err := svc.Get(ctx, "demo-cart-77"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("shell must not be persisted, got %v", err)
	}

	strict, _ := newEngine(Options{})
	if _, err := strict.Update(ctx, "demo-cart-77", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found without shell compat, got %v", err)
	}
}

func TestService_DuplicatePricingModes(t *testing.T) {
	ctx := context.Background()
	repriced := demo.MakeProduct(demo.ProductSeed{ID: "1", Title: "Sun Serum", Price: "40.00"}, time.Now())

	cases := []struct {
		name string
		opts Options
		want string
	}{
		{name: "implied unit price", opts: DefaultOptions(), want: "102.00"},
		{name: "catalog price", opts: Options{LegacyUpdateShell: true}, want: "120.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, catalog := newEngine(tc.opts)
			c, _ := svc.Add(ctx, "", []domain.CartLineInput{{MerchandiseID: "1-v2", Quantity: 2}})
			if _, err := catalog.Upsert(ctx, repriced); err != nil {
				t.Fatalf("Upsert: %v", err)
			}
			c, err := svc.Add(ctx, c.ID, []domain.CartLineInput{{MerchandiseID: "1-v2", Quantity: 1}})
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if got := c.Lines[0].Cost.TotalAmount.String(); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

type strippingRepo struct {
	cartrepo.Repository
}

func (r strippingRepo) Put(ctx context.Context, c *domain.Cart) error {
	out := c.Clone()
	for i := range out.Lines {
		out.Lines[i].Merchandise.Product = nil
	}
	return r.Repository.Put(ctx, out)
}

func TestService_RehydratesProducts(t *testing.T) {
	ctx := context.Background()
	svc := New(strippingRepo{cartrepo.NewMemory()}, demo.NewCatalog(), DefaultOptions(), nil)

	c, _ := svc.Add(ctx, "", []domain.CartLineInput{{MerchandiseID: "3-v2", Quantity: 1}})
	got, err := svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Lines[0].Merchandise.Product == nil || got.Lines[0].Merchandise.Product.ID != "3" {
		t.Fatalf("expected product 3 to be resolved, got %+v", got.Lines[0].Merchandise)
	}

	c, err = svc.Update(ctx, c.ID, []domain.CartLineUpdate{{ID: c.Lines[0].ID, Quantity: 2}})
	if err != nil || c.Lines[0].Cost.TotalAmount.String() != "92.00" {
		t.Fatalf("expected 92.00 after update, got %+v %v", c, err)
	}
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (*domain.Cart, error) {
	return nil, errors.New("db down")
}
func (failingRepo) Put(context.Context, *domain.Cart) error { return errors.New("db down") }
func (failingRepo) Delete(context.Context, string) error    { return errors.New("db down") }

func TestService_PropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	svc := New(failingRepo{}, demo.NewCatalog(), DefaultOptions(), nil)

	if _, err := svc.Add(ctx, "", []domain.CartLineInput{{MerchandiseID: "1-v1", Quantity: 1}}); err == nil {
		t.Fatalf("expected put error")
	}
	if _, err := svc.Remove(ctx, "demo-cart-1", []string{"x"}); err == nil {
		t.Fatalf("expected get error")
	}
}

func TestService_ConcurrentAddsOnSameCart(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEngine(DefaultOptions())
	c, _ := svc.Add(ctx, "", []domain.CartLineInput{{MerchandiseID: "1-v2", Quantity: 1}})

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			variant := fmt.Sprintf("%d-v%d", i%8+1, i%3+1)
			if _, err := svc.Add(ctx, c.ID, []domain.CartLineInput{{MerchandiseID: variant, Quantity: 1}}); err != nil {
				t.Errorf("Add: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TotalQuantity != workers+1 {
		t.Fatalf("expected %d items, got %d", workers+1, got.TotalQuantity)
	}
	assertTotals(t, got)
	if n := svc.locks.size(); n != 0 {
		t.Fatalf("expected lock table to drain, got %d", n)
	}
}

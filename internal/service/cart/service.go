package cart

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/demo"
	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

var (
	taxRate      = decimal.RequireFromString("0.08")
	taxedFactor  = decimal.RequireFromString("1.08")
	demoCurrency = domain.DefaultCurrency
)

// Service is the demo cart engine. Carts live in the injected store and
// line prices come from the demo catalog.
type Service struct {
	repo    cartrepo.Repository
	catalog catalog
	opts    Options
	logger  *zap.Logger

	locks      *keyedMutex
	nextCartID atomic.Int64
	nextLineID atomic.Int64
}

type catalog interface {
	ProductByID(id string) (*domain.Product, bool)
	ProductByVariant(variantID string) (*domain.Product, bool)
}

// Options toggles compatibility behaviours of the demo engine.
type Options struct {
	// LegacyDuplicatePricing re-derives the unit price of a repeated
	// merchandise id from the line's running total instead of the catalog.
	LegacyDuplicatePricing bool
	// LegacyUpdateShell makes Update on an unknown cart return an empty,
	// unpersisted cart carrying the requested id instead of ErrNotFound.
	LegacyUpdateShell bool
	// LegacyStoreEmptyAdd stores the cart created by Add even when every
	// requested line was skipped. When off, such an Add stores nothing and
	// returns the empty cart.
	LegacyStoreEmptyAdd bool
}

func DefaultOptions() Options {
	return Options{LegacyDuplicatePricing: true, LegacyUpdateShell: true, LegacyStoreEmptyAdd: true}
}

func New(repo cartrepo.Repository, catalog catalog, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		catalog: catalog,
		opts:    opts,
		logger:  logger,
		locks:   newKeyedMutex(),
	}
}

// Create returns a new empty cart. It has no id and is not stored until
// the first line is added.
func (s *Service) Create(_ context.Context) (*domain.Cart, error) {
	c := demo.EmptyCart()
	return &c, nil
}

func (s *Service) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	if cartID == "" {
		return nil, domain.ErrNotFound
	}
	c, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	s.hydrate(c)
	return c, nil
}

// Add appends lines to cartID, creating a new cart when the id is empty or
// unknown. Lines referencing unknown products or variants are skipped.
func (s *Service) Add(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	if cartID != "" {
		unlock := s.locks.Lock(cartID)
		defer unlock()
	}

	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		fresh := domain.EmptyCart(s.newCartID(), "#", demoCurrency)
		c = &fresh
	}

	for _, in := range lines {
		if in.Quantity <= 0 {
			s.logger.Debug("cart engine: skip line with non-positive quantity", zap.String("merchandise_id", in.MerchandiseID))
			continue
		}
		if line, ok := c.LineByMerchandise(in.MerchandiseID); ok {
			s.bumpLine(line, in.Quantity)
			continue
		}

		product, variant, ok := s.resolve(in)
		if !ok {
			s.logger.Debug("cart engine: skip unknown merchandise",
				zap.String("cart_id", c.ID),
				zap.String("merchandise_id", in.MerchandiseID),
				zap.String("product_id", in.ProductID),
			)
			continue
		}

		c.Lines = append(c.Lines, domain.CartLine{
			ID:       s.newLineID(),
			Quantity: in.Quantity,
			Cost:     domain.CartLineCost{TotalAmount: variant.Price.Mul(in.Quantity)},
			Merchandise: domain.Merchandise{
				ID:              variant.ID,
				Title:           variant.Title,
				SelectedOptions: append([]domain.SelectedOption(nil), variant.SelectedOptions...),
				ProductID:       product.ID,
				Product:         product,
			},
		})
	}

	if len(c.Lines) == 0 && !s.opts.LegacyStoreEmptyAdd {
		if err := s.repo.Delete(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("delete cart %q: %w", c.ID, err)
		}
		s.logger.Debug("cart engine: add left no lines", zap.String("cart_id", c.ID))
		empty := demo.EmptyCart()
		return &empty, nil
	}

	recalculate(c)
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, fmt.Errorf("store cart %q: %w", c.ID, err)
	}
	s.logger.Info("cart engine: add",
		zap.String("cart_id", c.ID),
		zap.Int("lines", len(c.Lines)),
		zap.Int("total_quantity", c.TotalQuantity),
	)
	return c, nil
}

// Remove drops the given line ids. A cart left without lines is deleted and
// nil is returned, as it is for an unknown cart.
func (s *Service) Remove(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error) {
	unlock := s.locks.Lock(cartID)
	defer unlock()

	c, err := s.load(ctx, cartID)
	if err != nil || c == nil {
		return nil, err
	}

	drop := make(map[string]struct{}, len(lineIDs))
	for _, id := range lineIDs {
		drop[id] = struct{}{}
	}
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if _, ok := drop[line.ID]; !ok {
			kept = append(kept, line)
		}
	}
	c.Lines = kept

	return s.finish(ctx, c, "remove")
}

// Update sets line quantities; quantity 0 removes the line. Unknown line ids
// are skipped.
func (s *Service) Update(ctx context.Context, cartID string, updates []domain.CartLineUpdate) (*domain.Cart, error) {
	unlock := s.locks.Lock(cartID)
	defer unlock()

	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		if !s.opts.LegacyUpdateShell {
			return nil, domain.ErrNotFound
		}
		shell := domain.EmptyCart(cartID, "#", demoCurrency)
		return &shell, nil
	}

	for _, u := range updates {
		if u.Quantity == 0 {
			c.Lines = removeLine(c.Lines, u.ID)
			continue
		}
		line, ok := c.LineByID(u.ID)
		if !ok {
			continue
		}
		unit := domain.ZeroMoney(demoCurrency)
		if p := line.Merchandise.Product; p != nil {
			if v, ok := p.Variant(line.Merchandise.ID); ok {
				unit = v.Price
			}
		}
		line.Quantity = u.Quantity
		line.Cost.TotalAmount = unit.Mul(u.Quantity)
	}

	return s.finish(ctx, c, "update")
}

func (s *Service) finish(ctx context.Context, c *domain.Cart, op string) (*domain.Cart, error) {
	if len(c.Lines) == 0 {
		if err := s.repo.Delete(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("delete cart %q: %w", c.ID, err)
		}
		s.logger.Info("cart engine: cart emptied", zap.String("cart_id", c.ID), zap.String("op", op))
		return nil, nil
	}
	recalculate(c)
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, fmt.Errorf("store cart %q: %w", c.ID, err)
	}
	s.logger.Info("cart engine: "+op, zap.String("cart_id", c.ID), zap.Int("total_quantity", c.TotalQuantity))
	return c, nil
}

// load returns nil without error when the cart does not exist.
func (s *Service) load(ctx context.Context, cartID string) (*domain.Cart, error) {
	if cartID == "" {
		return nil, nil
	}
	c, err := s.repo.Get(ctx, cartID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %q: %w", cartID, err)
	}
	s.hydrate(c)
	return c, nil
}

func (s *Service) hydrate(c *domain.Cart) {
	for i := range c.Lines {
		m := &c.Lines[i].Merchandise
		if m.Product != nil || m.ProductID == "" {
			continue
		}
		if p, ok := s.catalog.ProductByID(m.ProductID); ok {
			m.Product = p
		}
	}
}

func (s *Service) resolve(in domain.CartLineInput) (*domain.Product, *domain.ProductVariant, bool) {
	var (
		product *domain.Product
		ok      bool
	)
	if in.ProductID != "" {
		product, ok = s.catalog.ProductByID(in.ProductID)
	} else {
		product, ok = s.catalog.ProductByVariant(in.MerchandiseID)
	}
	if !ok {
		return nil, nil, false
	}
	variant, ok := product.Variant(in.MerchandiseID)
	if !ok {
		return nil, nil, false
	}
	return product, variant, true
}

func (s *Service) bumpLine(line *domain.CartLine, qty int) {
	prev := line.Quantity
	line.Quantity += qty

	var unit decimal.Decimal
	catalogPrice := false
	if !s.opts.LegacyDuplicatePricing {
		if p, ok := s.catalog.ProductByID(line.Merchandise.ProductID); ok {
			if v, ok := p.Variant(line.Merchandise.ID); ok {
				unit = v.Price.Amount
				catalogPrice = true
			}
		}
	}
	if !catalogPrice {
		unit = line.Cost.TotalAmount.Amount.Div(decimal.NewFromInt(int64(prev)))
	}
	line.Cost.TotalAmount = domain.Money{Amount: unit, CurrencyCode: demoCurrency}.Mul(line.Quantity)
}

func (s *Service) newCartID() string {
	return fmt.Sprintf("demo-cart-%d", s.nextCartID.Add(1))
}

func (s *Service) newLineID() string {
	return fmt.Sprintf("demo-line-%d", s.nextLineID.Add(1))
}

func removeLine(lines []domain.CartLine, id string) []domain.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

func recalculate(c *domain.Cart) {
	subtotal := c.Subtotal()
	qty := 0
	for _, line := range c.Lines {
		qty += line.Quantity
	}
	c.TotalQuantity = qty
	c.Cost = domain.CartCost{
		SubtotalAmount: domain.Money{Amount: subtotal.Round(2), CurrencyCode: demoCurrency},
		TotalTaxAmount: domain.Money{Amount: subtotal.Mul(taxRate).Round(2), CurrencyCode: demoCurrency},
		TotalAmount:    domain.Money{Amount: subtotal.Mul(taxedFactor).Round(2), CurrencyCode: demoCurrency},
	}
}

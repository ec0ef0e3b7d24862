package domain

import "github.com/shopspring/decimal"

type Cart struct {
	ID            string     `json:"id"`
	CheckoutURL   string     `json:"checkoutUrl"`
	Cost          CartCost   `json:"cost"`
	Lines         []CartLine `json:"lines"`
	TotalQuantity int        `json:"totalQuantity"`
}

type CartCost struct {
	SubtotalAmount Money `json:"subtotalAmount"`
	TotalAmount    Money `json:"totalAmount"`
	TotalTaxAmount Money `json:"totalTaxAmount"`
}

type CartLine struct {
	ID          string       `json:"id"`
	Quantity    int          `json:"quantity"`
	Cost        CartLineCost `json:"cost"`
	Merchandise Merchandise  `json:"merchandise"`
}

type CartLineCost struct {
	TotalAmount Money `json:"totalAmount"`
}

// Merchandise references the purchased variant. Product points at catalog
// state owned elsewhere; ProductID is what persistent stores keep.
type Merchandise struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	SelectedOptions []SelectedOption `json:"selectedOptions"`
	ProductID       string           `json:"productId,omitempty"`
	Product         *Product         `json:"product,omitempty"`
}

// CartLineInput is a request to add merchandise to a cart.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"min=1"`
	ProductID     string `json:"productId,omitempty"`
}

// CartLineUpdate sets an existing line's quantity; zero removes it.
type CartLineUpdate struct {
	ID            string `json:"id" validate:"required"`
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity" validate:"min=0"`
}

// CheckoutRedirect holds the hosted checkout URLs for a backend cart.
type CheckoutRedirect struct {
	CartURL             string `json:"cartUrl"`
	CheckoutURL         string `json:"checkoutUrl"`
	EmbeddedCheckoutURL string `json:"embeddedCheckoutUrl"`
}

// EmptyCart returns a cart with no lines and zeroed costs.
func EmptyCart(id, checkoutURL, currency string) Cart {
	return Cart{
		ID:          id,
		CheckoutURL: checkoutURL,
		Cost: CartCost{
			SubtotalAmount: ZeroMoney(currency),
			TotalAmount:    ZeroMoney(currency),
			TotalTaxAmount: ZeroMoney(currency),
		},
		Lines: []CartLine{},
	}
}

func (c *Cart) LineByID(id string) (*CartLine, bool) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			return &c.Lines[i], true
		}
	}
	return nil, false
}

func (c *Cart) LineByMerchandise(merchandiseID string) (*CartLine, bool) {
	for i := range c.Lines {
		if c.Lines[i].Merchandise.ID == merchandiseID {
			return &c.Lines[i], true
		}
	}
	return nil, false
}

// Clone copies the cart so line mutations do not leak between owners.
// Product pointers are shared; catalog products are immutable.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	out := *c
	out.Lines = make([]CartLine, len(c.Lines))
	for i, line := range c.Lines {
		line.Merchandise.SelectedOptions = append([]SelectedOption(nil), line.Merchandise.SelectedOptions...)
		out.Lines[i] = line
	}
	return &out
}

// Subtotal sums line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.Lines {
		sum = sum.Add(line.Cost.TotalAmount.Amount)
	}
	return sum
}

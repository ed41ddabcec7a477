package domain

import "github.com/shopspring/decimal"

// LineItem pairs a product with a quantity. Name and UnitPrice are
// snapshotted when the item enters the cart and are not re-read from the
// catalog afterward.
type LineItem struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is the ordered set of line items for one interactive session.
// It is never persisted.
type Cart struct {
	Lines []LineItem `json:"lineItems,omitempty"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range c.Lines {
		sum = sum.Add(li.LineTotal())
	}
	return sum
}

// Find returns the line item for productID, or nil.
func (c *Cart) Find(productID int) *LineItem {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

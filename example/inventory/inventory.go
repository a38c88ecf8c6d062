// Package inventory shows the types jsontestgen writes tests for.
package inventory

//go:generate go tool jsontestgen .

// Warehouse is a storage site. Notes are kept internally and never exposed.
//
//jsontestgen:generate
type Warehouse struct {
	Code     string  `json:"code"`
	Capacity int     `json:"capacity"`
	Open     bool    `json:"open"`
	Lat      float64 `json:"lat"`
	Grade    rune    `json:"grade"`
	Notes    string  `json:"-"`
}

// Item is a stock keeping unit. Use NewItemBuilder to make one.
//
//jsontestgen:generate builder
type Item struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ItemBuilder struct{ item Item }

func NewItemBuilder() *ItemBuilder { return &ItemBuilder{} }

func (b *ItemBuilder) SKU(sku string) *ItemBuilder      { b.item.SKU = sku; return b }
func (b *ItemBuilder) Name(name string) *ItemBuilder    { b.item.Name = name; return b }
func (b *ItemBuilder) Price(price float64) *ItemBuilder { b.item.Price = price; return b }

// Build returns the item. The builder must not be used afterwards.
func (b *ItemBuilder) Build() *Item { return &b.item }

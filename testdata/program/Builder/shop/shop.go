package shop

// Item is built by ItemBuilder.
//
//jsontestgen:generate builder
type Item struct {
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type ItemBuilder struct{ item Item }

func NewItemBuilder() *ItemBuilder { return &ItemBuilder{} }

func (b *ItemBuilder) SKU(sku string) *ItemBuilder      { b.item.SKU = sku; return b }
func (b *ItemBuilder) Price(price float64) *ItemBuilder { b.item.Price = price; return b }
func (b *ItemBuilder) Stock(stock int) *ItemBuilder     { b.item.Stock = stock; return b }
func (b *ItemBuilder) Build() *Item                     { return &b.item }

//jsontestgen:generate builder=MakeOrder
type Order struct {
	ID   int64 `json:"id"`
	Paid bool  `json:"paid"`
}

type OrderBuilder struct{ order Order }

func MakeOrder() OrderBuilder { return OrderBuilder{} }

func (b OrderBuilder) ID(id int64) OrderBuilder    { b.order.ID = id; return b }
func (b OrderBuilder) Paid(paid bool) OrderBuilder { b.order.Paid = paid; return b }
func (b OrderBuilder) Build() Order                { return b.order }

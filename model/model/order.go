package model

import (
	"time"
)

// Order is one synced storefront order. Orders are immutable once ingested.
type Order struct {
	ID            int64           `gorm:"primary_key:true" json:"id"`
	CustomerEmail string          `gorm:"column:customer_email" json:"customer_email"`
	TotalPrice    float64         `gorm:"column:total_price" json:"total_price"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"created_at"`
	LineItems     []OrderLineItem `gorm:"foreignkey:OrderID" json:"line_items"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderLineItem struct {
	ID       int64   `gorm:"primary_key:true" json:"id"`
	OrderID  int64   `gorm:"column:order_id" json:"order_id"`
	Title    string  `gorm:"column:title" json:"title"`
	SKU      string  `gorm:"column:sku" json:"sku"`
	Brand    string  `gorm:"column:brand" json:"brand"`
	Quantity int     `gorm:"column:quantity" json:"quantity"`
	Price    float64 `gorm:"column:price" json:"price"`
}

func (OrderLineItem) TableName() string {
	return "order_line_items"
}

// ProductKey identifies a line item for gateway product aggregation. Titles
// are preferred, falling back to SKU for feeds that sync without titles.
func (li *OrderLineItem) ProductKey() string {
	if li.Title != "" {
		return li.Title
	}
	return li.SKU
}

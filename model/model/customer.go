package model

import (
	"time"
)

// Customer is the synced storefront customer record. It is written only by
// the ingestion pipeline; the intelligence engine reads it as a snapshot.
type Customer struct {
	ID          int64     `gorm:"primary_key:true" json:"id"`
	Email       string    `gorm:"column:email" json:"email"`
	FirstName   string    `gorm:"column:first_name" json:"first_name"`
	LastName    string    `gorm:"column:last_name" json:"last_name"`
	OrdersCount int       `gorm:"column:orders_count" json:"orders_count"`
	TotalSpent  float64   `gorm:"column:total_spent" json:"total_spent"`
	City        string    `gorm:"column:city" json:"city"`
	Province    string    `gorm:"column:province" json:"province"`
	Country     string    `gorm:"column:country" json:"country"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

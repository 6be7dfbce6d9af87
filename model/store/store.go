package store

import (
	"storepulse/model/model"
	storeMemSQL "storepulse/model/store/memsql"
)

// Store is the read-only repository surface the intelligence engine needs.
// The engine itself never touches the database; handlers fetch the snapshot
// here and pass it in.
type Store interface {
	Ping() error
	GetCustomersWithOrders() ([]model.Customer, error)
	GetOrdersWithCustomerEmail() ([]model.Order, error)
}

// GetStore - Should decide on which store implementation to use by
// configuration and return it.
func GetStore() Store {
	return &storeMemSQL.MemSQL{}
}

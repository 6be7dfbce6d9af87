package memsql

import (
	C "storepulse/config"
	"storepulse/model/model"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GetOrdersWithCustomerEmail returns the full order history, line items
// included, restricted to orders that can be attributed to a customer.
func (store *MemSQL) GetOrdersWithCustomerEmail() ([]model.Order, error) {
	db := C.GetServices().Db

	var orders []model.Order
	err := db.Where("customer_email != ''").
		Preload("LineItems").Order("id").Find(&orders).Error
	if err != nil {
		log.WithError(err).Error("Failed to get orders with customer email.")
		return nil, errors.Wrap(err, "get orders with customer email")
	}
	return orders, nil
}

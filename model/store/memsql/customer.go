package memsql

import (
	C "storepulse/config"
	"storepulse/model/model"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GetCustomersWithOrders returns the scoring-eligible customer snapshot:
// everyone with at least one lifetime order and positive lifetime spend,
// in stable id order.
func (store *MemSQL) GetCustomersWithOrders() ([]model.Customer, error) {
	db := C.GetServices().Db

	var customers []model.Customer
	err := db.Where("orders_count > 0 AND total_spent > 0").
		Order("id").Find(&customers).Error
	if err != nil {
		log.WithError(err).Error("Failed to get customers with orders.")
		return nil, errors.Wrap(err, "get customers with orders")
	}
	return customers, nil
}

package memsql

import (
	C "storepulse/config"

	"github.com/pkg/errors"
)

// MemSQL reads the synced storefront tables over the MySQL wire protocol.
type MemSQL struct{}

func (store *MemSQL) Ping() error {
	db := C.GetServices().Db
	if err := db.DB().Ping(); err != nil {
		return errors.Wrap(err, "store unavailable")
	}
	return nil
}

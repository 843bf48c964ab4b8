package models

import "time"

// KVEntry is one row of the storefront key-value table. The store keeps the
// whole profile and ledger as JSON blobs under fixed keys, mirroring the
// two-key contract the storefront client was built against.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "storefront_kv"
}

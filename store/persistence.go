package store

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fixuno-backend/models"
)

// Storage keys. These mirror the localStorage keys the storefront client was
// originally written against, so a data export stays recognizable.
const (
	KeyUser         = "fixuno_user"
	KeyBookings     = "fixuno_global_bookings"
	KeyTrackerCount = "fixuno_tracker_count"
)

// Persistence is the durable key-value backend behind the store. Only two
// logical keys matter to the booking core; the tracker rides along.
type Persistence interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// GormPersistence keeps each key as a row of the storefront_kv table.
type GormPersistence struct {
	DB *gorm.DB
}

func NewGormPersistence(db *gorm.DB) *GormPersistence {
	return &GormPersistence{DB: db}
}

func (p *GormPersistence) Get(key string) (string, bool, error) {
	var entry models.KVEntry
	err := p.DB.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (p *GormPersistence) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return p.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// MemoryPersistence is an in-process backend used by tests and by local runs
// without a database.
type MemoryPersistence struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{data: make(map[string]string)}
}

func (p *MemoryPersistence) Get(key string) (string, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.data[key]
	return v, ok, nil
}

func (p *MemoryPersistence) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = value
	return nil
}

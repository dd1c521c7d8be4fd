package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore is the durable Store implementation, backed by a sqlite
// database. It fulfills the same contract as MemoryStore; sqlite row
// locking stands in for the MemoryStore mutex.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore connects to the sqlite database at the given path and
// migrates the schema.
func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Transaction{}, Category{})
	if err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) Transactions(owner uint64, filter TransactionFilter) ([]Transaction, int64, error) {
	q := s.db.Model(&Transaction{}).Where("owner_id = ?", owner)

	if filter.Category != "" && filter.Category != "all" {
		q = q.Where("category = ?", filter.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("date DESC, id DESC").Offset(filter.Offset)
	if limit := filter.limit(); limit >= 0 {
		q = q.Limit(limit)
	}

	transactions := make([]Transaction, 0)
	if err := q.Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

func (s *GormStore) Transaction(owner, id uint64) (Transaction, error) {
	var t Transaction

	err := s.db.Where("owner_id = ?", owner).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, err
	}

	return t, nil
}

func (s *GormStore) CreateTransaction(owner uint64, data TransactionEditable) (Transaction, error) {
	if err := data.validate(); err != nil {
		return Transaction{}, err
	}

	data.Date = normalizeDate(data.Date)

	t := Transaction{
		OwnerID:             owner,
		TransactionEditable: data,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return Transaction{}, err
	}

	return t, nil
}

func (s *GormStore) UpdateTransaction(owner, id uint64, patch TransactionPatch) (Transaction, error) {
	var t Transaction

	// Check and apply must not interleave with other writers
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", owner).First(&t, id).Error; err != nil {
			return err
		}

		merged := patch.apply(t.TransactionEditable)
		if err := merged.validate(); err != nil {
			return err
		}

		t.TransactionEditable = merged
		return tx.Save(&t).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, err
	}

	return t, nil
}

func (s *GormStore) DeleteTransaction(owner, id uint64) (bool, error) {
	res := s.db.Where("owner_id = ?", owner).Delete(&Transaction{}, id)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (s *GormStore) AllTransactions(owner uint64) ([]Transaction, error) {
	transactions := make([]Transaction, 0)

	err := s.db.
		Where("owner_id = ?", owner).
		Order("date DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (s *GormStore) Categories(owner uint64) ([]Category, error) {
	categories := make([]Category, 0)

	err := s.db.
		Where("owner_id = ?", owner).
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *GormStore) CreateCategory(owner uint64, data CategoryEditable) (Category, error) {
	if err := data.validate(); err != nil {
		return Category{}, err
	}

	category := Category{
		OwnerID:          owner,
		CategoryEditable: data,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return Category{}, err
	}

	return category, nil
}

func (s *GormStore) SeedDefaultCategories(owner uint64) error {
	categories := make([]Category, 0, len(DefaultCategories()))
	for _, data := range DefaultCategories() {
		categories = append(categories, Category{
			OwnerID:          owner,
			CategoryEditable: data,
		})
	}

	return s.db.Create(&categories).Error
}

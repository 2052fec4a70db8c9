package store

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/models"
	"gorm.io/gorm"
)

// reviewRecord is the table row. Seq keeps insertion order.
type reviewRecord struct {
	Seq           uint64 `gorm:"primaryKey;autoIncrement"`
	models.Review `gorm:"embedded"`
}

func (reviewRecord) TableName() string { return "reviews" }

// GormPersister stores reviews as rows of the reviews table.
type GormPersister struct {
	db *gorm.DB
}

// NewGormPersister migrates the reviews table and returns a persister on db.
func NewGormPersister(db *gorm.DB) (*GormPersister, error) {
	if err := db.AutoMigrate(&reviewRecord{}); err != nil {
		return nil, fmt.Errorf("migrate reviews table: %w", err)
	}
	return &GormPersister{db: db}, nil
}

func (p *GormPersister) Load() ([]models.Review, error) {
	var rows []reviewRecord
	if err := p.db.Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	reviews := make([]models.Review, len(rows))
	for i, row := range rows {
		reviews[i] = row.Review
	}
	return reviews, nil
}

func (p *GormPersister) Append(_ []models.Review, added models.Review) error {
	return p.db.Create(&reviewRecord{Review: added}).Error
}

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "reviews.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestGormPersister_RoundTripKeepsInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	p, err := NewGormPersister(db)
	require.NoError(t, err)

	s, err := New(p)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	// ids sort opposite to insertion order
	require.NoError(t, s.Append(review("z", "2022-03-01 00:00:00")))
	require.NoError(t, s.Append(review("m", "2022-01-01 00:00:00")))
	require.NoError(t, s.Append(review("a", "2022-02-01 00:00:00")))

	p2, err := NewGormPersister(db)
	require.NoError(t, err)
	reopened, err := New(p2)
	require.NoError(t, err)
	assert.Equal(t, s.All(), reopened.All())
}

func TestGormPersister_UniqueReviewID(t *testing.T) {
	p, err := NewGormPersister(openTestDB(t))
	require.NoError(t, err)

	require.NoError(t, p.Append(nil, review("dup", "2022-01-01")))
	assert.Error(t, p.Append(nil, review("dup", "2022-01-01")))
}

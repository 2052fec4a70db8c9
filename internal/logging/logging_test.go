package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/review-analyzer/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "logs.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var infoBuf, errBuf bytes.Buffer
	info := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	errOnly := slog.NewJSONHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError})

	log := slog.New(NewMultiHandler(info, errOnly)).With("service", "reviews")
	log.Info("listed")
	log.Error("persist failed")

	assert.Equal(t, 2, bytes.Count(infoBuf.Bytes(), []byte("\n")))
	assert.Equal(t, 1, bytes.Count(errBuf.Bytes(), []byte("\n")))
	assert.Contains(t, errBuf.String(), `"service":"reviews"`)
}

func TestDBHandler_FlushesErrorsOnStop(t *testing.T) {
	db := openTestDB(t)
	h := NewDBHandler(db, time.Hour)

	log := slog.New(h)
	log.Info("ignored")
	log.Error("persist failed",
		"request_id", "req-1",
		"method", "POST",
		"path", "/",
		"error", "disk full",
		"review_id", "abc",
	)
	h.Stop()

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "ERROR", rows[0].Level)
	assert.Equal(t, "req-1", rows[0].RequestID)
	assert.Equal(t, "POST", rows[0].Method)
	assert.Equal(t, "disk full", rows[0].Error)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(rows[0].Extra, &extra))
	assert.Equal(t, "abc", extra["review_id"])
}

func TestPruneSystemLogs(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()
	require.NoError(t, db.Create(&[]models.SystemLog{
		{ID: uuid.New(), Timestamp: now.Add(-40 * 24 * time.Hour), Level: "ERROR", Message: "old"},
		{ID: uuid.New(), Timestamp: now, Level: "ERROR", Message: "new"},
	}).Error)

	deleted := PruneSystemLogs(db, now.Add(-Retention))
	assert.Equal(t, int64(1), deleted)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "new", remaining[0].Message)
}

package summary

import (
	"path/filepath"
	"testing"

	"github.com/aisumm/core/internal/models"
	"github.com/aisumm/core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.SummaryModel{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.UserModel {
	t.Helper()
	u := &models.UserModel{
		Username: username,
		Name:     username,
		Mail:     username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedSummary(t *testing.T, db *gorm.DB, owner *models.UserModel) *models.SummaryModel {
	t.Helper()
	rec := &models.SummaryModel{
		Title:        "Original title",
		OriginalText: "original input",
		Summary:      "one two three",
		Keywords:     models.StringArray{"ai", "news"},
		WordCount:    3,
		UserID:       owner.ID,
		UserName:     owner.Name,
		UserMail:     owner.Mail,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}

func TestGetByIDScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	rec := seedSummary(t, db, owner)
	svc := NewService(db)

	got, err := svc.GetByID(owner.ID, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)

	// someone else's id behaves exactly like a missing record
	got, err = svc.GetByID(other.ID, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.GetByID(owner.ID, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	rec := seedSummary(t, db, owner)
	svc := NewService(db)

	title := "Hijacked"
	got, err := svc.Update(other.ID, rec.ID, &UpdateSummaryDTO{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, got)

	var current models.SummaryModel
	require.NoError(t, db.First(&current, "id = ?", rec.ID).Error)
	assert.Equal(t, "Original title", current.Title)

	summary := "brand new summary text"
	got, err = svc.Update(owner.ID, rec.ID, &UpdateSummaryDTO{Title: &title, Summary: &summary})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hijacked", got.Title)
	assert.Equal(t, 4, got.WordCount)

	require.NoError(t, db.First(&current, "id = ?", rec.ID).Error)
	assert.Equal(t, "Hijacked", current.Title)
	assert.Equal(t, summary, current.Summary)
	assert.Equal(t, 4, current.WordCount)
}

func TestUpdateBlankTitleFallsBackToUntitled(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "alice")
	rec := seedSummary(t, db, owner)
	svc := NewService(db)

	title := "   "
	got, err := svc.Update(owner.ID, rec.ID, &UpdateSummaryDTO{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Untitled", got.Title)
}

func TestDeleteScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	rec := seedSummary(t, db, owner)
	svc := NewService(db)

	deleted, err := svc.Delete(other.ID, rec.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := svc.GetByID(owner.ID, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "record must survive a foreign delete attempt")

	deleted, err = svc.Delete(owner.ID, rec.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = svc.GetByID(owner.ID, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListReturnsOnlyOwnRecords(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")
	seedSummary(t, db, owner)
	seedSummary(t, db, owner)
	seedSummary(t, db, other)
	svc := NewService(db)

	items, pag, err := svc.List(owner.ID, pagination.Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.EqualValues(t, 2, pag.TotalCount)
	for _, item := range items {
		assert.Equal(t, owner.ID, item.UserID)
	}
}

package summarize

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aisumm/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

type fakeModel struct {
	completion string
	err        error
	gotText    string
}

func (f *fakeModel) Complete(ctx context.Context, text string) (string, error) {
	f.gotText = text
	return f.completion, f.err
}

func TestServiceSummarizeText(t *testing.T) {
	model := &fakeModel{completion: "This article is short. Keywords: ai, news, test"}
	svc := NewService(nil, nil, model, zap.NewNop())

	out, err := svc.Summarize(context.Background(), "u1", &SummarizeDTO{Text: "some input text"})

	require.NoError(t, err)
	assert.Equal(t, "some input text", model.gotText)
	assert.Equal(t, []string{"ai", "news", "test"}, out.Keywords)
	assert.Equal(t, "ai • news • test", out.Title)
	assert.False(t, out.Saved)
	assert.Empty(t, out.ID)
}

func TestServiceSummarizeRejectsMissingInput(t *testing.T) {
	svc := NewService(nil, nil, &fakeModel{}, zap.NewNop())

	_, err := svc.Summarize(context.Background(), "u1", &SummarizeDTO{})

	assert.ErrorIs(t, err, ErrMissingInput)
	assert.True(t, IsRequestError(err))
}

func TestServiceSummarizeRejectsBothInputs(t *testing.T) {
	svc := NewService(nil, nil, &fakeModel{}, zap.NewNop())

	_, err := svc.Summarize(context.Background(), "u1", &SummarizeDTO{
		Text: "text",
		URL:  "https://example.com",
	})

	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestServiceSummarizeSavePersistsRecord(t *testing.T) {
	db := newTestDB(t)
	owner := models.UserModel{Username: "alice", Name: "Alice", Mail: "alice@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&owner).Error)

	model := &fakeModel{completion: "This article is short. Keywords: ai, news, test"}
	svc := NewService(db, nil, model, zap.NewNop())

	out, err := svc.Summarize(context.Background(), owner.ID, &SummarizeDTO{Text: "some input text", Save: true})

	require.NoError(t, err)
	assert.True(t, out.Saved)
	require.NotEmpty(t, out.ID)

	var rec models.SummaryModel
	require.NoError(t, db.First(&rec, "id = ?", out.ID).Error)
	assert.Equal(t, owner.ID, rec.UserID)
	assert.Equal(t, "Alice", rec.UserName)
	assert.Equal(t, "alice@example.com", rec.UserMail)
	assert.Equal(t, "some input text", rec.OriginalText)
	assert.Equal(t, out.Summary, rec.Summary)
	assert.Equal(t, out.Keywords, []string(rec.Keywords))
	assert.Equal(t, out.WordCount, rec.WordCount)
}

func TestServiceSummarizeSaveFailureStillReturnsResult(t *testing.T) {
	db := newTestDB(t)
	model := &fakeModel{completion: "This article is short. Keywords: ai, news, test"}
	svc := NewService(db, nil, model, zap.NewNop())

	// owner row is missing, so the save cannot complete
	out, err := svc.Summarize(context.Background(), "no-such-user", &SummarizeDTO{Text: "some input text", Save: true})

	require.NoError(t, err)
	assert.False(t, out.Saved)
	assert.Empty(t, out.ID)
	assert.Equal(t, []string{"ai", "news", "test"}, out.Keywords)
	assert.NotEmpty(t, out.Summary)

	var count int64
	require.NoError(t, db.Model(&models.SummaryModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestServiceSummarizePropagatesModelFailure(t *testing.T) {
	model := &fakeModel{err: ErrModelCall}
	svc := NewService(nil, nil, model, zap.NewNop())

	_, err := svc.Summarize(context.Background(), "u1", &SummarizeDTO{Text: "some input"})

	assert.ErrorIs(t, err, ErrModelCall)
	assert.False(t, IsRequestError(err))
}

package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aisumm/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the summarization pipeline: extract → complete → normalize →
// synthesize, with optional persistence.
type Service struct {
	db        *gorm.DB
	extractor *Extractor
	model     ModelClient
	logger    *zap.Logger
}

func NewService(db *gorm.DB, extractor *Extractor, model ModelClient, logger *zap.Logger) *Service {
	return &Service{db: db, extractor: extractor, model: model, logger: logger}
}

// Outcome carries the normalized result plus persistence state.
type Outcome struct {
	Result
	ID    string
	Saved bool
}

// Summarize executes the pipeline for one request. A failed save is logged
// and reported via Saved=false; it never discards a successful result.
func (s *Service) Summarize(ctx context.Context, userID string, dto *SummarizeDTO) (*Outcome, error) {
	text := strings.TrimSpace(dto.Text)
	pageURL := strings.TrimSpace(dto.URL)

	if text == "" && pageURL == "" {
		return nil, ErrMissingInput
	}
	if text != "" && pageURL != "" {
		return nil, fmt.Errorf("%w: not both", ErrMissingInput)
	}

	if pageURL != "" {
		extracted, err := s.extractor.Extract(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		text = extracted
	}

	raw, err := s.model.Complete(ctx, text)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Result: Normalize(raw)}
	if dto.Save {
		out.ID, out.Saved = s.save(userID, text, out.Result)
	}
	return out, nil
}

func (s *Service) save(userID, originalText string, res Result) (string, bool) {
	var owner models.UserModel
	if err := s.db.Select("id, name, mail").First(&owner, "id = ?", userID).Error; err != nil {
		s.logger.Error("summary save: load owner", zap.String("user_id", userID), zap.Error(err))
		return "", false
	}

	rec := models.SummaryModel{
		Title:        res.Title,
		OriginalText: originalText,
		Summary:      res.Summary,
		Keywords:     models.StringArray(res.Keywords),
		WordCount:    res.WordCount,
		UserID:       owner.ID,
		UserName:     owner.Name,
		UserMail:     owner.Mail,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		s.logger.Error("summary save", zap.String("user_id", userID), zap.Error(err))
		return "", false
	}
	return rec.ID, true
}

// IsRequestError reports whether err is the caller's fault rather than an
// upstream failure.
func IsRequestError(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

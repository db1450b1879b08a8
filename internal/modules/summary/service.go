package summary

import (
	"errors"
	"strings"

	"github.com/aisumm/core/internal/models"
	"github.com/aisumm/core/internal/pkg/pagination"
	"github.com/aisumm/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Service provides owner-scoped access to stored summaries. Every lookup
// filters on user_id so a foreign record behaves as if it did not exist.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(userID string, q pagination.Query) ([]models.SummaryModel, response.Pagination, error) {
	tx := s.db.Model(&models.SummaryModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	var items []models.SummaryModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(userID, id string) (*models.SummaryModel, error) {
	var m models.SummaryModel
	if err := s.db.First(&m, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(userID, id string, dto *UpdateSummaryDTO) (*models.SummaryModel, error) {
	m, err := s.GetByID(userID, id)
	if err != nil || m == nil {
		return m, err
	}
	updates := map[string]interface{}{}
	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			title = "Untitled"
		}
		updates["title"] = title
		m.Title = title
	}
	if dto.Summary != nil {
		updates["summary"] = *dto.Summary
		updates["word_count"] = len(strings.Fields(*dto.Summary))
		m.Summary = *dto.Summary
		m.WordCount = len(strings.Fields(*dto.Summary))
	}
	if len(updates) == 0 {
		return m, nil
	}
	return m, s.db.Model(m).Updates(updates).Error
}

// Delete removes an owned record. Returns false when no matching record
// belongs to the caller.
func (s *Service) Delete(userID, id string) (bool, error) {
	res := s.db.Delete(&models.SummaryModel{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

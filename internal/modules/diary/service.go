package diary

import (
	"errors"
	"time"

	"github.com/gratitude-grove/core/internal/models"
	"github.com/gratitude-grove/core/internal/pkg/datefilter"
	"github.com/gratitude-grove/core/internal/pkg/pagination"
	"github.com/gratitude-grove/core/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	errAlreadyWrittenToday = errors.New("오늘의 감사는 이미 기록했어요.")
	errDiaryNotFound       = errors.New("일기를 찾을 수 없습니다.")
)

// Service handles owner-scoped diary business logic. "Today" is always
// resolved in the service calendar timezone, never the caller's clock.
type Service struct {
	db  *gorm.DB
	loc *time.Location
}

func NewService(db *gorm.DB, loc *time.Location) *Service {
	return &Service{db: db, loc: loc}
}

// todayRange is the half-open interval covering the current calendar day.
func (s *Service) todayRange(now time.Time) (time.Time, time.Time) {
	local := now.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// GetToday returns the user's entry for the current day, or nil.
func (s *Service) GetToday(userID string) (*models.DiaryModel, error) {
	start, end := s.todayRange(time.Now())

	var entry models.DiaryModel
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Create normalizes and inserts a new entry. A second entry for the same
// calendar day is rejected: one entry per user per day is a real constraint
// here, not a UI convention.
func (s *Service) Create(userID string, content []string) (*models.DiaryModel, error) {
	normalized, err := NormalizeContent(content)
	if err != nil {
		return nil, err
	}

	existing, err := s.GetToday(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errAlreadyWrittenToday
	}

	entry := models.DiaryModel{
		UserID:  userID,
		Content: models.StringArray(normalized),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update replaces the entry's content wholesale. Owner-scoped; like_count is
// untouched.
func (s *Service) Update(userID, entryID string, content []string) (*models.DiaryModel, error) {
	normalized, err := NormalizeContent(content)
	if err != nil {
		return nil, err
	}

	res := s.db.Model(&models.DiaryModel{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		Update("content", models.StringArray(normalized))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errDiaryNotFound
	}

	var entry models.DiaryModel
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete hard-deletes the entry and its like relations. Owner-scoped.
func (s *Service) Delete(userID, entryID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.DiaryModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errDiaryNotFound
		}
		return tx.Where("diary_id = ?", entryID).Delete(&models.DiaryLikeModel{}).Error
	})
}

// List returns one page of the user's entries, newest first, optionally
// constrained by a date filter. The returned pagination total counts rows
// matching the filter; the unfiltered total comes from Count.
func (s *Service) List(userID string, q pagination.Query, filter datefilter.Filter) ([]models.DiaryModel, response.Pagination, error) {
	tx := s.db.Model(&models.DiaryModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if start, end, ok := filter.Range(time.Now().In(s.loc)); ok {
		tx = tx.Where("created_at >= ? AND created_at < ?", start, end)
	}

	var entries []models.DiaryModel
	pag, err := pagination.Paginate(tx, q, &entries)
	return entries, pag, err
}

// Count returns the user's unfiltered entry total for the stats header.
func (s *Service) Count(userID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.DiaryModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Contributions returns the user's entry timestamps within the trailing
// window, the input for the presence grid.
func (s *Service) Contributions(userID string, windowDays int) ([]time.Time, error) {
	cutoff := time.Now().In(s.loc).AddDate(0, 0, -windowDays)

	var timestamps []time.Time
	err := s.db.Model(&models.DiaryModel{}).
		Where("user_id = ? AND created_at >= ?", userID, cutoff).
		Order("created_at ASC").
		Pluck("created_at", &timestamps).Error
	return timestamps, err
}

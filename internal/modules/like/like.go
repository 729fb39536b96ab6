// Package like maintains diary like relations and their denormalized counters.
package like

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gratitude-grove/core/internal/middleware"
	"github.com/gratitude-grove/core/internal/models"
	"github.com/gratitude-grove/core/internal/pkg/response"
	"gorm.io/gorm"
)

var errDiaryNotFound = errors.New("일기를 찾을 수 없습니다.")

// Service toggles like relations. The relation write and the counter update
// share one transaction, so like_count cannot drift from the relation
// cardinality the way two separate remote calls could.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Toggle flips the (user, diary) like relation and returns the new state
// plus the authoritative counter, letting clients patch their caches without
// a refetch. Two sequential toggles restore the original state.
func (s *Service) Toggle(userID, diaryID string) (liked bool, likeCount int, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var diary models.DiaryModel
		if err := tx.First(&diary, "id = ?", diaryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errDiaryNotFound
			}
			return err
		}

		res := tx.Where("user_id = ? AND diary_id = ?", userID, diaryID).
			Delete(&models.DiaryLikeModel{})
		if res.Error != nil {
			return res.Error
		}

		delta := -1
		if res.RowsAffected == 0 {
			if err := tx.Create(&models.DiaryLikeModel{UserID: userID, DiaryID: diaryID}).Error; err != nil {
				return err
			}
			delta = 1
		}
		liked = delta > 0

		if err := tx.Model(&models.DiaryModel{}).
			Where("id = ?", diaryID).
			Update("like_count", gorm.Expr("like_count + ?", delta)).Error; err != nil {
			return err
		}

		return tx.Model(&models.DiaryModel{}).
			Where("id = ?", diaryID).
			Pluck("like_count", &likeCount).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likeCount, nil
}

// LikedSet returns which of the given diaries the user has liked.
func (s *Service) LikedSet(userID string, diaryIDs []string) (map[string]bool, error) {
	likedSet := make(map[string]bool, len(diaryIDs))
	if userID == "" || len(diaryIDs) == 0 {
		return likedSet, nil
	}

	var likedIDs []string
	err := s.db.Model(&models.DiaryLikeModel{}).
		Where("user_id = ? AND diary_id IN ?", userID, diaryIDs).
		Pluck("diary_id", &likedIDs).Error
	if err != nil {
		return nil, err
	}

	for _, id := range likedIDs {
		likedSet[id] = true
	}
	return likedSet, nil
}

// Handler handles like HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the toggle route. Anonymous likes are not a thing;
// unauthenticated callers get a 401 and sign in first.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/diaries/:id/like", authMW, h.toggle)
}

// toggle POST /diaries/:id/like  [auth]
func (h *Handler) toggle(c *gin.Context) {
	liked, likeCount, err := h.svc.Toggle(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, errDiaryNotFound) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"liked": liked, "like_count": likeCount})
}

// Package feed serves the public gratitude feed.
package feed

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gratitude-grove/core/internal/middleware"
	"github.com/gratitude-grove/core/internal/models"
	"github.com/gratitude-grove/core/internal/modules/like"
	"github.com/gratitude-grove/core/internal/pkg/pagination"
	"github.com/gratitude-grove/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Item is one feed entry. Only the author's nickname leaves the server;
// email and ids of other users stay private.
type Item struct {
	ID        string             `json:"id"`
	Content   models.StringArray `json:"content"`
	CreatedAt time.Time          `json:"created_at"`
	LikeCount int                `json:"like_count"`
	Liked     bool               `json:"liked"`
	Nickname  string             `json:"nickname"`
}

type Service struct {
	db    *gorm.DB
	likes *like.Service
}

func NewService(db *gorm.DB, likes *like.Service) *Service {
	return &Service{db: db, likes: likes}
}

// List returns the newest diaries across all users. viewerID may be empty,
// in which case every Liked flag is false.
func (s *Service) List(viewerID string, q pagination.Query) ([]Item, response.Pagination, error) {
	var diaries []models.DiaryModel
	meta, err := pagination.Paginate(
		s.db.Model(&models.DiaryModel{}).Preload("Author").Order("created_at DESC"),
		q, &diaries,
	)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	ids := make([]string, len(diaries))
	for i, d := range diaries {
		ids[i] = d.ID
	}
	likedSet, err := s.likes.LikedSet(viewerID, ids)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	items := make([]Item, len(diaries))
	for i, d := range diaries {
		items[i] = Item{
			ID:        d.ID,
			Content:   d.Content,
			CreatedAt: d.CreatedAt,
			LikeCount: d.LikeCount,
			Liked:     likedSet[d.ID],
		}
		if d.Author != nil {
			items[i].Nickname = d.Author.Nickname
		}
	}

	return items, meta, nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the feed route. optionalAuthMW resolves the viewer
// when a token is present but never rejects anonymous requests.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, optionalAuthMW gin.HandlerFunc) {
	rg.GET("/feed", optionalAuthMW, h.list)
}

// list GET /feed
func (h *Handler) list(c *gin.Context) {
	items, meta, err := h.svc.List(middleware.CurrentUserID(c), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, meta)
}

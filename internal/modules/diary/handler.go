// Package diary exposes the owner-scoped diary endpoints.
package diary

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gratitude-grove/core/internal/middleware"
	"github.com/gratitude-grove/core/internal/pkg/datefilter"
	"github.com/gratitude-grove/core/internal/pkg/pagination"
	"github.com/gratitude-grove/core/internal/pkg/response"
)

const defaultContributionWindowDays = 365

// Handler handles diary HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts diary routes onto the given router group.
// Everything here requires an authenticated owner.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/diaries", authMW)

	g.GET("", h.list)
	g.GET("/today", h.today)
	g.GET("/count", h.count)
	g.GET("/contributions", h.contributions)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// list GET /diaries?page=&size=&year=&month=&day=
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	filter := datefilter.Filter{Year: lq.Year, Month: lq.Month, Day: lq.Day}
	if !filter.Valid() {
		response.BadRequest(c, "날짜 필터가 올바르지 않습니다.")
		return
	}

	entries, pag, err := h.svc.List(middleware.CurrentUserID(c), q, filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, entries, pag)
}

// today GET /diaries/today
func (h *Handler) today(c *gin.Context) {
	entry, err := h.svc.GetToday(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if entry == nil {
		response.OK(c, gin.H{"diary": nil})
		return
	}
	response.OK(c, gin.H{"diary": entry})
}

// count GET /diaries/count
func (h *Handler) count(c *gin.Context) {
	total, err := h.svc.Count(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"count": total})
}

// contributions GET /diaries/contributions?days=365
func (h *Handler) contributions(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultContributionWindowDays)))
	if err != nil || days < 0 {
		response.BadRequest(c, "days 값이 올바르지 않습니다.")
		return
	}

	timestamps, err := h.svc.Contributions(middleware.CurrentUserID(c), days)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"timestamps": timestamps})
}

// create POST /diaries
func (h *Handler) create(c *gin.Context) {
	var dto SaveDiaryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, errEmptyContent.Error())
		return
	}

	entry, err := h.svc.Create(middleware.CurrentUserID(c), dto.Content)
	if err != nil {
		switch {
		case errors.Is(err, errAlreadyWrittenToday):
			response.Conflict(c, err.Error())
		case isContentError(err):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, entry)
}

// update PUT /diaries/:id
func (h *Handler) update(c *gin.Context) {
	var dto SaveDiaryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, errEmptyContent.Error())
		return
	}

	entry, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), dto.Content)
	if err != nil {
		switch {
		case errors.Is(err, errDiaryNotFound):
			response.NotFoundMsg(c, err.Error())
		case isContentError(err):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, entry)
}

// delete DELETE /diaries/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		if errors.Is(err, errDiaryNotFound) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func isContentError(err error) bool {
	return errors.Is(err, errEmptyContent) ||
		errors.Is(err, errTooManyLines) ||
		errors.Is(err, errLineTooLong)
}

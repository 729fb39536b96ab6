// Package auth exposes signup, signin and profile identity endpoints.
package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gratitude-grove/core/internal/middleware"
	"github.com/gratitude-grove/core/internal/pkg/response"
)

// Handler handles auth HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")

	g.POST("/signup", h.signUp)
	g.POST("/signin", h.signIn)
	g.GET("/check-email", h.checkEmail)
	g.GET("/check-nickname", h.checkNickname)

	authed := g.Group("", authMW)
	authed.POST("/signout", h.signOut)
	authed.GET("/profile", h.profile)
	authed.PATCH("/nickname", h.updateNickname)
}

// signUp POST /auth/signup
func (h *Handler) signUp(c *gin.Context) {
	var dto SignUpDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "이메일, 비밀번호, 별명을 모두 입력해주세요.")
		return
	}

	profile, token, err := h.svc.SignUp(&dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, errEmailTaken), errors.Is(err, errNicknameTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, errNicknameTooLong), errors.Is(err, errNicknameCharset),
			errors.Is(err, errPasswordTooShort):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Created(c, gin.H{"profile": profile, "token": token})
}

// signIn POST /auth/signin
func (h *Handler) signIn(c *gin.Context) {
	var dto SignInDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "이메일과 비밀번호를 입력해주세요.")
		return
	}

	profile, token, err := h.svc.SignIn(dto.Email, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.UnauthorizedMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"profile": profile, "token": token})
}

// signOut POST /auth/signout  [auth]
func (h *Handler) signOut(c *gin.Context) {
	if err := h.svc.SignOut(middleware.CurrentUserID(c), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// checkEmail GET /auth/check-email?email=
func (h *Handler) checkEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "이메일을 입력해주세요.")
		return
	}

	available, err := h.svc.EmailAvailable(email)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"available": available})
}

// checkNickname GET /auth/check-nickname?nickname=&exclude_user_id=
func (h *Handler) checkNickname(c *gin.Context) {
	nickname := c.Query("nickname")
	if nickname == "" {
		response.BadRequest(c, "별명을 입력해주세요.")
		return
	}
	if err := ValidateNickname(nickname); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	available, err := h.svc.NicknameAvailable(nickname, c.Query("exclude_user_id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"available": available})
}

// profile GET /auth/profile  [auth]
func (h *Handler) profile(c *gin.Context) {
	profile, err := h.svc.GetProfile(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if profile == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, profile)
}

// updateNickname PATCH /auth/nickname  [auth]
func (h *Handler) updateNickname(c *gin.Context) {
	var dto UpdateNicknameDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "별명을 입력해주세요.")
		return
	}

	profile, err := h.svc.UpdateNickname(middleware.CurrentUserID(c), dto.Nickname)
	if err != nil {
		switch {
		case errors.Is(err, errNicknameTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, errNicknameTooLong), errors.Is(err, errNicknameCharset):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, profile)
}

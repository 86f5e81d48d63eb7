package user

import (
	"errors"

	"github.com/blognest/core/internal/middleware"
	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/users")

	g.GET("/:userId/followers", h.followers)
	g.GET("/:userId/following", h.following)

	a := g.Group("", authMW)
	a.GET("/all", h.listOthers)
	a.POST("/:userId/follow", h.follow)
	a.DELETE("/:userId/unfollow", h.unfollow)
}

func (h *Handler) follow(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if err := h.svc.Follow(c.Request.Context(), userID, c.Param("userId")); err != nil {
		h.writeFollowError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Followed successfully"})
}

func (h *Handler) unfollow(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if err := h.svc.Unfollow(c.Request.Context(), userID, c.Param("userId")); err != nil {
		h.writeFollowError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Unfollowed successfully"})
}

func (h *Handler) followers(c *gin.Context) {
	summaries, err := h.svc.Followers(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeFollowError(c, err)
		return
	}
	response.OK(c, summaries)
}

func (h *Handler) following(c *gin.Context) {
	summaries, err := h.svc.Following(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeFollowError(c, err)
		return
	}
	response.OK(c, summaries)
}

func (h *Handler) listOthers(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	users, err := h.svc.ListOthers(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, users)
}

func (h *Handler) writeFollowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.NotFound(c, ErrUserNotFound.Error())
	case errors.Is(err, ErrSelfFollow),
		errors.Is(err, ErrAlreadyFollowing),
		errors.Is(err, ErrNotFollowing):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

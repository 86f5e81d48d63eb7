package admin

import (
	"errors"
	"time"

	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the admin console endpoints behind auth + admin.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/api/admin", authMW, adminMW)

	g.GET("/users", h.listUsers)
	g.PUT("/users/:userId", h.updateUser)
	g.DELETE("/users/:userId", h.deleteUser)
	g.GET("/user-blog-counts", h.userBlogCounts)
	g.GET("/user-logins/today", h.todayLoginStats)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, users)
}

func (h *Handler) updateUser(c *gin.Context) {
	var dto UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateUser(c.Request.Context(), c.Param("userId"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(c, ErrUserNotFound.Error())
		case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrInvalidRole):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, user)
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.svc.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(c, ErrUserNotFound.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "User deleted successfully"})
}

func (h *Handler) userBlogCounts(c *gin.Context) {
	counts, err := h.svc.UserBlogCounts(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, counts)
}

func (h *Handler) todayLoginStats(c *gin.Context) {
	hist, err := h.svc.TodayLoginStats(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"hours": hist[:]})
}

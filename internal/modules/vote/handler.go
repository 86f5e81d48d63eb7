package vote

import (
	"errors"

	"github.com/blognest/core/internal/middleware"
	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/votes", authMW)
	g.POST("/:blogId", h.cast)
	g.GET("/:blogId", h.get)
}

func (h *Handler) cast(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var dto CastVoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sum, err := h.svc.Cast(c.Request.Context(), userID, c.Param("blogId"), dto.Type)
	if err != nil {
		h.writeVoteError(c, err)
		return
	}
	response.OK(c, sum)
}

func (h *Handler) get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	sum, err := h.svc.Get(c.Request.Context(), userID, c.Param("blogId"))
	if err != nil {
		h.writeVoteError(c, err)
		return
	}
	response.OK(c, sum)
}

func (h *Handler) writeVoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBlogNotFound):
		response.NotFound(c, ErrBlogNotFound.Error())
	case errors.Is(err, ErrInvalidType):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

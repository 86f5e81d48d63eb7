package comment

import (
	"errors"

	"github.com/blognest/core/internal/middleware"
	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/comments")
	g.GET("/:blogId", h.list)
	g.POST("/:blogId", authMW, h.add)
}

func (h *Handler) add(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var dto AddCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cm, err := h.svc.Add(c.Request.Context(), userID, c.Param("blogId"), dto.Content)
	if err != nil {
		h.writeCommentError(c, err)
		return
	}
	response.Created(c, cm)
}

func (h *Handler) list(c *gin.Context) {
	comments, err := h.svc.List(c.Request.Context(), c.Param("blogId"))
	if err != nil {
		h.writeCommentError(c, err)
		return
	}
	response.OK(c, comments)
}

func (h *Handler) writeCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBlogNotFound):
		response.NotFound(c, ErrBlogNotFound.Error())
	case errors.Is(err, ErrEmptyContent):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

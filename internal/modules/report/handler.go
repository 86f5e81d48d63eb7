package report

import (
	"errors"

	"github.com/blognest/core/internal/middleware"
	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the report endpoints. Filing a report needs only
// auth; the moderation queue needs the admin role on top.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/api/reports", authMW)
	g.POST("", h.create)

	a := g.Group("", adminMW)
	a.GET("", h.list)
	a.PATCH("/:reportId/seen", h.markSeen)
	a.DELETE("/:reportId", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var dto CreateReportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	r, err := h.svc.Create(c.Request.Context(), userID, &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrBlogNotFound):
			response.NotFound(c, ErrBlogNotFound.Error())
		case errors.Is(err, ErrSelfReport),
			errors.Is(err, ErrAlreadyReported),
			errors.Is(err, ErrReasonRequired):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, r)
}

func (h *Handler) list(c *gin.Context) {
	reports, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, reports)
}

func (h *Handler) markSeen(c *gin.Context) {
	if err := h.svc.MarkSeen(c.Request.Context(), c.Param("reportId")); err != nil {
		h.writeReportError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Report marked as seen"})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("reportId")); err != nil {
		h.writeReportError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Report deleted successfully"})
}

func (h *Handler) writeReportError(c *gin.Context, err error) {
	if errors.Is(err, ErrReportNotFound) {
		response.NotFound(c, ErrReportNotFound.Error())
		return
	}
	response.InternalError(c, err)
}

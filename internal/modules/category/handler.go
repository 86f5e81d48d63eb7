package category

import (
	"errors"

	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/categories")

	g.GET("/get", h.list)

	a := g.Group("", authMW)
	a.POST("/add", h.create)
	a.PUT("/update/:id", h.update)
	a.DELETE("/delete/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrCategoryExists) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cats)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrCategoryExists):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrCategoryNotFound):
			response.NotFound(c, ErrCategoryNotFound.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, cat)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(),
		c.Param("id"), c.Query("action"), c.Query("transferTo"))
	if err != nil {
		var ra *RequiresActionError
		switch {
		case errors.As(err, &ra):
			response.BadRequestDetail(c, ra.Error(), gin.H{
				"requiresAction": true,
				"blogCount":      ra.BlogCount,
			})
		case errors.Is(err, ErrCategoryNotFound):
			response.NotFound(c, ErrCategoryNotFound.Error())
		case errors.Is(err, ErrTransferTarget):
			response.NotFound(c, ErrTransferTarget.Error())
		case errors.Is(err, ErrTransferToSelf),
			errors.Is(err, ErrTransferToRequired),
			errors.Is(err, ErrInvalidCascadeAction):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "Category deleted successfully"})
}

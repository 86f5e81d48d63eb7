package blog

import (
	"errors"

	"github.com/blognest/core/internal/middleware"
	"github.com/blognest/core/internal/pkg/pagination"
	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/blogs")

	g.GET("/get", h.list)
	g.GET("/get/:id", h.get)
	g.GET("/user/:userId", h.listByAuthor)

	a := g.Group("", authMW)
	a.POST("/add", h.create)
	a.GET("/feed", h.feed)
	a.GET("/userBlogs", h.ownBlogs)
	a.PUT("/update/:id", h.update)
	a.DELETE("/delete/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Create(c.Request.Context(), userID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, b)
}

func (h *Handler) list(c *gin.Context) {
	blogs, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, blogs)
}

func (h *Handler) get(c *gin.Context) {
	b, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrBlogNotFound) {
			response.NotFound(c, ErrBlogNotFound.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, b)
}

func (h *Handler) listByAuthor(c *gin.Context) {
	blogs, err := h.svc.ListByAuthor(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, ErrBlogNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, blogs)
}

func (h *Handler) ownBlogs(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	blogs, err := h.svc.OwnBlogs(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, blogs)
}

func (h *Handler) feed(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	q := pagination.FromContext(c)
	items, pag, err := h.svc.Feed(c.Request.Context(), userID, q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	var dto UpdateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	b, err := h.svc.Update(c.Request.Context(), userID, c.Param("id"), &dto)
	if err != nil {
		h.writeBlogError(c, err)
		return
	}
	response.OK(c, b)
}

func (h *Handler) delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeBlogError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Blog deleted successfully"})
}

func (h *Handler) writeBlogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBlogNotFound):
		response.NotFound(c, ErrBlogNotFound.Error())
	case errors.Is(err, ErrNotOwner):
		response.UnauthorizedMsg(c, ErrNotOwner.Error())
	default:
		response.InternalError(c, err)
	}
}

package app

import (
	"github.com/blognest/core/internal/middleware"
	"github.com/blognest/core/internal/modules/admin"
	"github.com/blognest/core/internal/modules/auth"
	"github.com/blognest/core/internal/modules/blog"
	"github.com/blognest/core/internal/modules/category"
	"github.com/blognest/core/internal/modules/comment"
	"github.com/blognest/core/internal/modules/report"
	"github.com/blognest/core/internal/modules/user"
	"github.com/blognest/core/internal/modules/vote"
	"github.com/blognest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth()
	adminMW := middleware.RequireAdmin(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	root := r.Group("")

	auth.NewHandler(auth.NewService(db, a.mailer)).RegisterRoutes(root, authMW)
	blog.NewHandler(blog.NewService(db)).RegisterRoutes(root, authMW)
	category.NewHandler(category.NewService(db)).RegisterRoutes(root, authMW)
	user.NewHandler(user.NewService(db)).RegisterRoutes(root, authMW)
	vote.NewHandler(vote.NewService(db)).RegisterRoutes(root, authMW)
	comment.NewHandler(comment.NewService(db)).RegisterRoutes(root, authMW)
	report.NewHandler(report.NewService(db)).RegisterRoutes(root, authMW, adminMW)
	admin.NewHandler(admin.NewService(db)).RegisterRoutes(root, authMW, adminMW)
}

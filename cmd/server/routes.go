package main

import (
	"github.com/gin-gonic/gin"

	"lexdesk/internal/handler"
	"lexdesk/internal/middleware"
	"lexdesk/internal/permission"
	"lexdesk/internal/utils"
)

type routeHandlers struct {
	auth      *handler.AuthHandler
	users     *handler.UserHandler
	projects  *handler.ProjectHandler
	tickets   *handler.TicketHandler
	meetings  *handler.MeetingHandler
	articles  *handler.ArticleHandler
	notifs    *handler.NotificationHandler
	activity  *handler.ActivityHandler
	search    *handler.SearchHandler
	dashboard *handler.DashboardHandler
	mail      *handler.MailHandler
}

// RegisterRoutes wires the REST surface. Read routes run optional
// auth (anonymous proceeds); everything that mutates sits behind
// RequireAuth, plus a permission where the action needs one.
func RegisterRoutes(r *gin.Engine, issuer *utils.TokenIssuer, h routeHandlers) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.auth.Register)
		auth.POST("/login", h.auth.Login)
		auth.GET("/session", middleware.RequireAuth(issuer), h.auth.Session)
	}

	read := api.Group("/")
	read.Use(middleware.OptionalAuth(issuer))
	{
		read.GET("/projects", h.projects.List)
		read.GET("/projects/:id", h.projects.Get)
		read.GET("/tickets", h.tickets.List)
		read.GET("/tickets/:id", h.tickets.Get)
		read.GET("/meetings", h.meetings.List)
		read.GET("/articles", h.articles.List)
		read.GET("/articles/:id", h.articles.Get)
		read.GET("/users", h.users.List)
		read.GET("/search", h.search.Search)
		read.GET("/dashboard/stats", h.dashboard.Stats)
		read.GET("/activity", h.activity.List)
	}

	write := api.Group("/")
	write.Use(middleware.RequireAuth(issuer))
	{
		write.POST("/projects", middleware.RequirePermission(permission.ProjectsManage), h.projects.Create)
		write.PATCH("/projects/:id", middleware.RequirePermission(permission.ProjectsManage), h.projects.Update)
		write.DELETE("/projects/:id", middleware.RequirePermission(permission.ProjectsManage), h.projects.Delete)

		write.POST("/tickets", middleware.RequirePermission(permission.TicketsManage), h.tickets.Create)
		write.PATCH("/tickets/:id", middleware.RequirePermission(permission.TicketsManage), h.tickets.Update)
		write.DELETE("/tickets/:id", middleware.RequirePermission(permission.TicketsManage), h.tickets.Delete)
		write.POST("/tickets/:id/comments", h.tickets.AddComment)

		write.POST("/meetings", middleware.RequirePermission(permission.MeetingsManage), h.meetings.Create)
		write.POST("/articles", middleware.RequirePermission(permission.ArticlesManage), h.articles.Create)

		write.GET("/notifications", h.notifs.List)
		write.PATCH("/notifications/:id", h.notifs.Patch)

		write.PATCH("/users/:id", middleware.RequirePermission(permission.UsersManage), h.users.Update)
		write.POST("/send-email", middleware.RequirePermission(permission.EmailSend), h.mail.Send)
	}
}

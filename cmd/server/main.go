package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lexdesk/internal/conf"
	"lexdesk/internal/data"
	"lexdesk/internal/handler"
	"lexdesk/internal/middleware"
	"lexdesk/internal/repository"
	"lexdesk/internal/service"
	"lexdesk/internal/utils"
	"lexdesk/internal/worker"
)

func main() {
	// 1. Config
	cfg := conf.LoadConfig()

	// 2. Data layer (Postgres + Redis)
	d, cleanup, err := data.NewData(cfg)
	if err != nil {
		log.Fatalf("data layer init failed: %v", err)
	}
	defer cleanup()

	// 3. Repositories
	userRepo := repository.NewUserRepository(d.DB)
	projectRepo := repository.NewProjectRepository(d.DB)
	ticketRepo := repository.NewTicketRepository(d.DB)
	meetingRepo := repository.NewMeetingRepository(d.DB)
	articleRepo := repository.NewArticleRepository(d.DB)
	activityRepo := repository.NewActivityRepository(d.DB)
	notifRepo := repository.NewNotificationRepository(d.DB)

	// 4. Services
	issuer := utils.NewTokenIssuer(cfg.Auth.JWTSecret)
	mailSvc := service.NewMailService(cfg.Mail, d.Redis)
	notifSvc := service.NewNotificationService(notifRepo, mailSvc, cfg.App.BaseURL)
	activitySvc := service.NewActivityService(activityRepo)
	defer activitySvc.Close()

	authSvc := service.NewAuthService(userRepo, issuer)
	userSvc := service.NewUserService(userRepo)
	projectSvc := service.NewProjectService(projectRepo, userRepo, notifSvc, activitySvc)
	ticketSvc := service.NewTicketService(ticketRepo, userRepo, notifSvc, activitySvc)
	meetingSvc := service.NewMeetingService(meetingRepo, userRepo, notifSvc, activitySvc)
	articleSvc := service.NewArticleService(articleRepo, userRepo, notifSvc)
	searchSvc := service.NewSearchService(d.DB)
	dashboardSvc := service.NewDashboardService(d.DB, d.Redis, meetingRepo, notifRepo)

	// 5. Mail worker
	if cfg.Mail.Enabled {
		mw := worker.NewMailWorker(d.Redis, worker.NewSMTPSender(cfg.Mail))
		mw.Start(context.Background(), cfg.Mail.Workers)
	}

	// 6. Handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	ticketH := handler.NewTicketHandler(ticketSvc)
	meetingH := handler.NewMeetingHandler(meetingSvc)
	articleH := handler.NewArticleHandler(articleSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	activityH := handler.NewActivityHandler(activitySvc)
	searchH := handler.NewSearchHandler(searchSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	mailH := handler.NewMailHandler(mailSvc)

	// 7. Router
	r := gin.Default()
	r.Use(middleware.TraceMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-Trace-Id", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Trace-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, issuer, routeHandlers{
		auth:      authH,
		users:     userH,
		projects:  projectH,
		tickets:   ticketH,
		meetings:  meetingH,
		articles:  articleH,
		notifs:    notifH,
		activity:  activityH,
		search:    searchH,
		dashboard: dashboardH,
		mail:      mailH,
	})

	log.Printf("lexdesk listening on :%s", cfg.App.Port)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

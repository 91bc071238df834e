package router

import (
	"github.com/campusboard/bulletin-api/internal/application"
	"github.com/campusboard/bulletin-api/internal/container"
	pginfra "github.com/campusboard/bulletin-api/internal/infrastructure/postgres"
	handlers "github.com/campusboard/bulletin-api/internal/interface/http"
	"github.com/campusboard/bulletin-api/internal/router/modules"
	"github.com/campusboard/bulletin-api/pkg/helpers"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module with the registry. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	events := pginfra.NewEventRepository(pool)
	notices := pginfra.NewNoticeRepository(pool)

	authSvc := application.NewAuthService(users, cfg.InvitationCode, logger)
	userSvc := application.NewUserService(users, logger)
	categorySvc := application.NewCategoryService(categories, logger)
	eventSvc := application.NewEventService(events, categories, logger)
	noticeSvc := application.NewNoticeService(notices, categories, logger)

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetSessions(), logger,
		cookies, cfg.SessionTTL, container.GetRabbitPub(), cfg.MailSendEnabled)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewEventsModule(handlers.NewEventHandler(eventSvc, logger)))
	r.Add(modules.NewNoticesModule(handlers.NewNoticeHandler(noticeSvc, logger)))
	r.Add(modules.NewCategoriesModule(handlers.NewCategoryHandler(categorySvc, logger)))
	r.Add(modules.NewUsersModule(handlers.NewUserHandler(userSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

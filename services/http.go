package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/quasar-gd/quasar_api/services/handlers"
	"github.com/quasar-gd/quasar_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc    *AuthService
	requestSvc *LevelRequestService
	reviewSvc  *LevelReviewService
	modSvc     *ModerationService
	revSvc     *ReviewerService
	gateSvc    *RequestManagerService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.requestSvc = svc.Service(LEVEL_REQUEST_SVC).(*LevelRequestService)
	svc.reviewSvc = svc.Service(LEVEL_REVIEW_SVC).(*LevelReviewService)
	svc.modSvc = svc.Service(MODERATION_SVC).(*ModerationService)
	svc.revSvc = svc.Service(REVIEWER_SVC).(*ReviewerService)
	svc.gateSvc = svc.Service(REQUEST_MANAGER_SVC).(*RequestManagerService)

	app := fiber.New(fiber.Config{
		JSONEncoder:  shared.JSONEncoder,
		JSONDecoder:  shared.JSONDecoder,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if monitoringSvc, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		app.Use(MonitoringMiddleware(monitoringSvc))
	}

	app.Get("/ping", svc.ping)

	authHandler := handlers.NewAuthHandler(svc.authSvc)
	requestHandler := handlers.NewLevelRequestHandler(svc.requestSvc)
	reviewHandler := handlers.NewLevelReviewHandler(svc.reviewSvc, svc.revSvc)
	moderationHandler := handlers.NewModerationHandler(svc.modSvc)
	reviewerHandler := handlers.NewReviewerHandler(svc.revSvc)
	configHandler := handlers.NewRequestConfigHandler(svc.gateSvc)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)
	v1.Post("/register", authHandler.Register)
	v1.Post("/login", authHandler.Login)

	authed := v1.Group("", svc.authSvc.RequiredAuth())

	authed.Post("/requests", requestHandler.CreateLevelRequest)
	authed.Patch("/requests", requestHandler.UpdateLevelRequest)
	authed.Put("/requests/message", requestHandler.AttachMessage)
	authed.Put("/requests/thread", requestHandler.AttachThread)
	authed.Get("/requests/:level_id", requestHandler.GetLevelRequest)
	authed.Delete("/requests/:level_id", requestHandler.DeleteLevelRequest)

	authed.Post("/reviews", reviewHandler.SubmitReview)
	authed.Put("/reviews/message", reviewHandler.UpdateReviewMessage)
	authed.Get("/reviews/:level_id/:reviewer_id", reviewHandler.GetReview)

	authed.Post("/moderation/send", moderationHandler.SendLevel)
	authed.Get("/moderation/:level_id", moderationHandler.GetDecision)

	authed.Post("/reviewers", reviewerHandler.AddReviewer)
	authed.Get("/reviewers/:discord_id", reviewerHandler.GetReviewer)
	authed.Delete("/reviewers/:discord_id", reviewerHandler.RemoveReviewer)

	authed.Get("/config", configHandler.GetConfig)
	authed.Patch("/config", configHandler.UpdateConfig)

	svc.app = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

// handleError maps workflow errors onto the response envelope. Anything not
// carrying an AppError is treated as internal.
func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}

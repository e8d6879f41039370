package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/configs"
	adminService "academy_backend/internals/features/admins/service"
	consultService "academy_backend/internals/features/entrance/consultations/service"
	authAdmin "academy_backend/internals/middlewares/auth_admin"
	routeDetails "academy_backend/internals/route/details"
)

var startTime = time.Now()

type Options struct {
	Config   configs.Config
	Gate     *adminService.SessionGate
	Notifier consultService.Notifier // nil → built from Config
}

func SetupRoutes(app *fiber.App, db *gorm.DB, opts Options) {
	startTime = time.Now()

	gate := opts.Gate
	if gate == nil {
		gate = adminService.NewSessionGate(db, opts.Config)
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = consultService.NewNotifier(opts.Config)
	}

	BaseRoutes(app, db, opts.Config)

	// every /api request knows whether it carries a live admin session
	api := app.Group("/api", authAdmin.AdminContext(gate))

	log.Println("[INFO] Setting up auth routes...")
	routeDetails.AuthRoutes(api, db, gate)

	log.Println("[INFO] Setting up community routes...")
	routeDetails.CommunityRoutes(api, db)

	log.Println("[INFO] Setting up entrance routes...")
	routeDetails.EntranceRoutes(api, db, notifier)

	log.Println("[INFO] Setting up learn routes...")
	routeDetails.LearnRoutes(api, db)
}

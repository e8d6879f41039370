package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	"gorm.io/gorm"

	"academy_backend/internals/configs"
	database "academy_backend/internals/databases"
	adminService "academy_backend/internals/features/admins/service"
	scheduler "academy_backend/internals/features/admins/scheduler"
	consultService "academy_backend/internals/features/entrance/consultations/service"
	helper "academy_backend/internals/helpers"
	middlewares "academy_backend/internals/middlewares"
	routes "academy_backend/internals/route"
	"academy_backend/internals/seeds"
	seedAdmins "academy_backend/internals/seeds/admins"
)

// usage: academy [serve | seed | create-admin <username> <password>]
func main() {
	cfg := configs.LoadEnv()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		serve(cfg)
	case "seed":
		db := connect(cfg)
		defer database.Close(db)
		if err := seeds.RunAllSeeds(db, cfg); err != nil {
			log.Fatalf("❌ seed: %v", err)
		}
	case "create-admin":
		if len(os.Args) < 4 {
			log.Fatal("usage: academy create-admin <username> <password>")
		}
		db := connect(cfg)
		defer database.Close(db)
		admin, err := seedAdmins.CreateAdmin(db, os.Args[2], os.Args[3])
		if errors.Is(err, seedAdmins.ErrAdminExists) {
			log.Fatalf("❌ admin '%s' already exists", os.Args[2])
		}
		if err != nil {
			log.Fatalf("❌ create-admin: %v", err)
		}
		log.Printf("✅ admin '%s' created (id=%d)", admin.Username, admin.ID)
	default:
		log.Fatalf("unknown command %q (serve | seed | create-admin)", cmd)
	}
}

func connect(cfg configs.Config) *gorm.DB {
	db := database.ConnectDB(cfg)
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ migrate: %v", err)
	}
	return db
}

func serve(cfg configs.Config) {
	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// same budget as statement_timeout on the DB side
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app, cfg)

	// 🔌 DB connect + pool + migrate + warm-up
	db := connect(cfg)
	database.WarmUpQueries(db)

	gate := adminService.NewSessionGate(db, cfg)

	// ⏱ scheduler after the DB is ready
	cleanup, err := scheduler.StartSessionCleanupScheduler(gate, cfg.SessionCleanupCron)
	if err != nil {
		log.Fatalf("❌ session cleanup schedule %q: %v", cfg.SessionCleanupCron, err)
	}

	routes.SetupRoutes(app, db, routes.Options{
		Config:   cfg,
		Gate:     gate,
		Notifier: consultService.NewNotifier(cfg),
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop cron, drain HTTP, close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 shutting down...")

	<-cleanup.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(db)
}

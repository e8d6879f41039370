package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"academy_backend/internals/features/admins/service"
)

// StartSessionCleanupScheduler purges expired admin_sessions on spec. The
// returned cron must be stopped on shutdown.
func StartSessionCleanupScheduler(gate *service.SessionGate, spec string) (*cron.Cron, error) {
	if spec == "" {
		spec = "@every 1h"
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { RunSessionCleanup(gate) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("✅ [CLEANUP] admin session cleanup scheduled (%s)", spec)
	return c, nil
}

func RunSessionCleanup(gate *service.SessionGate) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := gate.PurgeExpired(ctx)
	if err != nil {
		log.Printf("[CLEANUP ERROR] admin sessions: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d expired admin sessions removed", n)
	}
	return n
}

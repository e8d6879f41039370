package scheduler_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internals/features/admins/model"
	"academy_backend/internals/features/admins/scheduler"
	"academy_backend/internals/features/admins/service"
	"academy_backend/internals/testutil"
)

func TestRunSessionCleanup(t *testing.T) {
	db := testutil.NewDB(t)
	gate := service.NewSessionGate(db, testutil.Config())
	now := time.Now().UTC()

	require.NoError(t, db.Create(&[]model.AdminSessionModel{
		{ID: uuid.New(), AdminID: 1, ExpiresAt: now.Add(-time.Hour)},
		{ID: uuid.New(), AdminID: 1, ExpiresAt: now.Add(-time.Minute)},
		{ID: uuid.New(), AdminID: 1, ExpiresAt: now.Add(time.Hour)},
	}).Error)

	assert.EqualValues(t, 2, scheduler.RunSessionCleanup(gate))
	assert.Zero(t, scheduler.RunSessionCleanup(gate))

	var left int64
	require.NoError(t, db.Model(&model.AdminSessionModel{}).Count(&left).Error)
	assert.EqualValues(t, 1, left)
}

func TestStartSessionCleanupScheduler(t *testing.T) {
	gate := service.NewSessionGate(testutil.NewDB(t), testutil.Config())

	_, err := scheduler.StartSessionCleanupScheduler(gate, "not a cron spec")
	assert.Error(t, err)

	c, err := scheduler.StartSessionCleanupScheduler(gate, "")
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}

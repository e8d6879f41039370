package routes_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internals/testutil"
)

func TestHealth(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)

	res := app.Do(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, res.Status, res.Raw)
	assert.Equal(t, "OK", res.Body["status"])
	assert.Equal(t, "Connected", res.Body["database"])
	assert.Equal(t, "test", res.Body["environment"])

	res = app.Do(t, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, res.Status)
}

package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internals/testutil"
)

func TestVerifyPassword(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)

	res := app.Do(t, http.MethodPost, "/api/parent-posts", map[string]any{"title": "t", "content": "c", "password": "1234"}, nil)
	require.Equal(t, http.StatusCreated, res.Status)
	postID := res.ID()

	res = app.Do(t, http.MethodPost, "/api/qna", map[string]any{"title": "t", "content": "c", "password": "qna-pw"}, nil)
	require.Equal(t, http.StatusCreated, res.Status)
	qnaID := res.ID()

	tests := []struct {
		name     string
		body     map[string]any
		status   int
		verified any
	}{
		{"parent ok", map[string]any{"resourceType": "parent", "id": postID, "password": "1234"}, http.StatusOK, true},
		{"parent wrong", map[string]any{"resourceType": "parent", "id": postID, "password": "0000"}, http.StatusOK, false},
		{"legacy field names with string id", map[string]any{"postType": "qna", "postId": fmt.Sprint(qnaID), "password": "qna-pw"}, http.StatusOK, true},
		{"unknown row", map[string]any{"resourceType": "qna", "id": qnaID + 100, "password": "x"}, http.StatusNotFound, nil},
		{"unknown type", map[string]any{"resourceType": "notice", "id": 1, "password": "x"}, http.StatusBadRequest, nil},
		{"missing password", map[string]any{"resourceType": "qna", "id": qnaID}, http.StatusBadRequest, nil},
		{"missing id", map[string]any{"resourceType": "qna", "password": "x"}, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := app.Do(t, http.MethodPost, "/api/verify-password", tt.body, nil)
			assert.Equal(t, tt.status, res.Status, res.Raw)
			if tt.verified != nil {
				assert.Equal(t, tt.verified, res.Body["verified"])
			}
		})
	}
}

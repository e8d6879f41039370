package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internals/features/community/parent_posts/model"
	"academy_backend/internals/testutil"
)

func createPost(t *testing.T, app *testutil.App, body map[string]any) uint {
	t.Helper()
	res := app.Do(t, http.MethodPost, "/api/parent-posts", body, nil)
	require.Equal(t, http.StatusCreated, res.Status, res.Raw)
	return res.ID()
}

func TestParentPost_CreateValidation(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)

	res := app.Do(t, http.MethodPost, "/api/parent-posts", map[string]any{"title": "t", "content": "c"}, nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "비밀번호를 입력해주세요.", res.Body["message"])

	res = app.Do(t, http.MethodPost, "/api/parent-posts", map[string]any{"title": "", "content": "c", "password": "1"}, nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "제목과 내용을 입력해주세요.", res.Body["message"])

	id := createPost(t, app, map[string]any{"title": "질문", "content": "내용", "password": "1234"})
	var m model.ParentPostModel
	require.NoError(t, app.DB.First(&m, id).Error)
	assert.Equal(t, "익명", m.Author)
	assert.NotEqual(t, "1234", m.PasswordHash)

	res = app.Do(t, http.MethodGet, fmt.Sprintf("/api/parent-posts/%d", id), nil, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.NotContains(t, res.Raw, "password")
}

func TestParentPost_SecretAccess(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)
	id := createPost(t, app, map[string]any{"title": "비밀", "content": "상담 내용", "password": "1234", "is_secret": true})
	path := fmt.Sprintf("/api/parent-posts/%d", id)

	res := app.Do(t, http.MethodGet, "/api/parent-posts", nil, nil)
	require.Len(t, res.Items(), 1)
	assert.Equal(t, "비밀", res.Items()[0]["title"])
	assert.Equal(t, "", res.Items()[0]["content"])

	res = app.Do(t, http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = app.Do(t, http.MethodGet, path+"?password=0000", nil, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, "비밀번호가 올바르지 않습니다.", res.Body["message"])

	res = app.Do(t, http.MethodGet, path+"?password=1234", nil, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "상담 내용", res.Body["content"])
	assert.EqualValues(t, 1, res.Body["views"])

	cookie := app.Login(t)
	res = app.Do(t, http.MethodGet, path, nil, cookie)
	require.Equal(t, http.StatusOK, res.Status)
	assert.EqualValues(t, 2, res.Body["views"], "denied reads do not count")

	res = app.Do(t, http.MethodGet, "/api/parent-posts", nil, cookie)
	assert.Equal(t, "상담 내용", res.Items()[0]["content"])
}

func TestParentPost_UpdateAndDelete(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)
	id := createPost(t, app, map[string]any{"title": "원래 제목", "content": "내용", "password": "1234"})
	path := fmt.Sprintf("/api/parent-posts/%d", id)

	res := app.Do(t, http.MethodPut, path, map[string]any{"title": "새 제목"}, nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)

	res = app.Do(t, http.MethodPut, path, map[string]any{"title": "새 제목", "password": "0000"}, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = app.Do(t, http.MethodPut, path, map[string]any{"title": "새 제목", "password": "1234"}, nil)
	require.Equal(t, http.StatusOK, res.Status, res.Raw)
	assert.Equal(t, "게시글이 수정되었습니다.", res.Body["message"])

	var m model.ParentPostModel
	require.NoError(t, app.DB.First(&m, id).Error)
	assert.Equal(t, "새 제목", m.Title)
	assert.Equal(t, "내용", m.Content)

	res = app.Do(t, http.MethodPost, path+"/comments", map[string]any{"content": "댓글", "password": "9"}, nil)
	require.Equal(t, http.StatusCreated, res.Status)

	res = app.Do(t, http.MethodDelete, path+"?password=0000", nil, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = app.Do(t, http.MethodDelete, path, map[string]any{"password": "1234"}, nil)
	require.Equal(t, http.StatusOK, res.Status)

	var comments int64
	require.NoError(t, app.DB.Model(&model.CommentModel{}).Where("post_id = ?", id).Count(&comments).Error)
	assert.Zero(t, comments)

	res = app.Do(t, http.MethodGet, path, nil, nil)
	assert.Equal(t, http.StatusNotFound, res.Status)
	res = app.Do(t, http.MethodDelete, path, map[string]any{"password": "1234"}, nil)
	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestParentPost_AdminBypassesPassword(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)
	id := createPost(t, app, map[string]any{"title": "t", "content": "c", "password": "1234"})
	cookie := app.Login(t)

	res := app.Do(t, http.MethodDelete, fmt.Sprintf("/api/parent-posts/%d", id), nil, cookie)
	assert.Equal(t, http.StatusOK, res.Status, res.Raw)
}

func TestComments(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)
	postID := createPost(t, app, map[string]any{"title": "t", "content": "c", "password": "1234"})
	otherID := createPost(t, app, map[string]any{"title": "t2", "content": "c2", "password": "1234"})
	base := fmt.Sprintf("/api/parent-posts/%d/comments", postID)

	res := app.Do(t, http.MethodPost, "/api/parent-posts/999/comments", map[string]any{"content": "x", "password": "1"}, nil)
	assert.Equal(t, http.StatusNotFound, res.Status)

	res = app.Do(t, http.MethodPost, base, map[string]any{"content": "", "password": "1"}, nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)

	var ids []uint
	for _, body := range []string{"첫 댓글", "둘째 댓글", "셋째 댓글"} {
		res = app.Do(t, http.MethodPost, base, map[string]any{"content": body, "password": "pw", "author": "학부모"}, nil)
		require.Equal(t, http.StatusCreated, res.Status, res.Raw)
		ids = append(ids, res.ID())
	}

	res = app.Do(t, http.MethodGet, base, nil, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Contains(t, res.Raw, "첫 댓글")
	assert.Less(t, indexOf(res.Raw, "첫 댓글"), indexOf(res.Raw, "셋째 댓글"), "oldest first")

	// comment must belong to the post in the path
	res = app.Do(t, http.MethodPut, fmt.Sprintf("/api/parent-posts/%d/comments/%d", otherID, ids[0]),
		map[string]any{"content": "hijack", "password": "pw"}, nil)
	assert.Equal(t, http.StatusNotFound, res.Status)

	res = app.Do(t, http.MethodPut, fmt.Sprintf("%s/%d", base, ids[0]), map[string]any{"content": "수정", "password": "x"}, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = app.Do(t, http.MethodPut, fmt.Sprintf("%s/%d", base, ids[0]), map[string]any{"content": "수정", "password": "pw"}, nil)
	require.Equal(t, http.StatusOK, res.Status)

	res = app.Do(t, http.MethodDelete, fmt.Sprintf("%s/%d", base, ids[1]), map[string]any{"password": "pw"}, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "댓글이 삭제되었습니다.", res.Body["message"])

	// older client: commentId in the body
	res = app.Do(t, http.MethodDelete, base, map[string]any{"commentId": ids[2], "password": "wrong"}, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)
	res = app.Do(t, http.MethodDelete, base, map[string]any{"commentId": ids[2], "password": "pw"}, nil)
	require.Equal(t, http.StatusOK, res.Status)

	var left []model.CommentModel
	require.NoError(t, app.DB.Where("post_id = ?", postID).Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "수정", left[0].Content)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestParentPost_UpdateRejectsBlankRequiredFields(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)
	id := createPost(t, app, map[string]any{"title": "원래 제목", "content": "원래 내용", "password": "1234"})
	path := fmt.Sprintf("/api/parent-posts/%d", id)

	res := app.Do(t, http.MethodPost, path+"/comments", map[string]any{"content": "원래 댓글", "password": "pw"}, nil)
	require.Equal(t, http.StatusCreated, res.Status, res.Raw)
	commentPath := fmt.Sprintf("%s/comments/%d", path, res.ID())

	tests := []struct {
		name string
		path string
		body map[string]any
	}{
		{"post blank title", path, map[string]any{"title": "  ", "password": "1234"}},
		{"post empty content", path, map[string]any{"content": "", "password": "1234"}},
		{"comment blank content", commentPath, map[string]any{"content": "   ", "password": "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := app.Do(t, http.MethodPut, tt.path, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, res.Status, res.Raw)
		})
	}

	var post model.ParentPostModel
	require.NoError(t, app.DB.First(&post, id).Error)
	assert.Equal(t, "원래 제목", post.Title)
	assert.Equal(t, "원래 내용", post.Content)

	var comment model.CommentModel
	require.NoError(t, app.DB.Where("post_id = ?", id).First(&comment).Error)
	assert.Equal(t, "원래 댓글", comment.Content)
}

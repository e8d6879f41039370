package helperAuth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parentModel "academy_backend/internals/features/community/parent_posts/model"
	qnaModel "academy_backend/internals/features/entrance/qna/model"
	helperAuth "academy_backend/internals/helpers/auth"
	"academy_backend/internals/testutil"
)

func TestVerifyRowPassword(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	hash, err := helperAuth.HashPassword("1234")
	require.NoError(t, err)

	post := parentModel.ParentPostModel{Title: "t", Content: "c", Author: "익명", PasswordHash: hash}
	require.NoError(t, db.Create(&post).Error)
	comment := parentModel.CommentModel{PostID: post.ID, Author: "익명", Content: "c", PasswordHash: hash}
	require.NoError(t, db.Create(&comment).Error)
	qna := qnaModel.QnaPostModel{Title: "q", Content: "c", Author: "익명", PasswordHash: hash}
	require.NoError(t, db.Create(&qna).Error)

	tests := []struct {
		name     string
		table    string
		id       uint
		password string
		want     bool
		wantErr  error
	}{
		{name: "parent match", table: helperAuth.TableParentPosts, id: post.ID, password: "1234", want: true},
		{name: "parent mismatch", table: helperAuth.TableParentPosts, id: post.ID, password: "0000", want: false},
		{name: "comment match", table: helperAuth.TableComments, id: comment.ID, password: "1234", want: true},
		{name: "qna match", table: helperAuth.TableQnaPosts, id: qna.ID, password: "1234", want: true},
		{name: "qna empty password", table: helperAuth.TableQnaPosts, id: qna.ID, password: "", want: false},
		{name: "missing row", table: helperAuth.TableQnaPosts, id: 9999, password: "1234", wantErr: helperAuth.ErrRowNotFound},
		{name: "table outside whitelist", table: "admins", id: 1, password: "1234", wantErr: helperAuth.ErrTableDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := helperAuth.VerifyRowPassword(ctx, db, tt.table, tt.id, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

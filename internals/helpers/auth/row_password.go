package helperAuth

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Tables whose rows carry a visitor-chosen password.
const (
	TableParentPosts = "parent_posts"
	TableQnaPosts    = "qna_posts"
	TableComments    = "comments"
)

var guardedTables = map[string]bool{
	TableParentPosts: true,
	TableQnaPosts:    true,
	TableComments:    true,
}

var (
	// ErrRowNotFound: no row with that id (→ 404). A wrong password is (false, nil) (→ 403).
	ErrRowNotFound = errors.New("row not found")
	ErrTableDenied = errors.New("table is not password protected")
)

// VerifyRowPassword compares password against the stored bcrypt hash of row id.
func VerifyRowPassword(ctx context.Context, db *gorm.DB, table string, id uint, password string) (bool, error) {
	if !guardedTables[table] {
		return false, ErrTableDenied
	}

	var hashes []string
	q := fmt.Sprintf("SELECT password_hash FROM %s WHERE id = ? LIMIT 1", pq.QuoteIdentifier(table))
	if err := db.WithContext(ctx).Raw(q, id).Scan(&hashes).Error; err != nil {
		return false, err
	}
	if len(hashes) == 0 {
		return false, ErrRowNotFound
	}
	return CheckPasswordHash(hashes[0], password), nil
}

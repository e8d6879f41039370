package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsUniqueErr reports a unique-constraint violation from Postgres (23505) or
// any driver that only exposes the message (sqlite in tests).
func IsUniqueErr(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// likeOp: ILIKE on Postgres, LIKE elsewhere (sqlite LIKE is already
// case-insensitive for ASCII).
func likeOp(db *gorm.DB) string {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

// ApplySearch adds "(col1 LIKE ? OR col2 LIKE ? ...)" for a non-blank term.
// Columns come from code, never from the request.
func ApplySearch(tx *gorm.DB, term string, columns ...string) *gorm.DB {
	term = Clean(term)
	if term == "" || len(columns) == 0 {
		return tx
	}
	op := likeOp(tx)
	like := "%" + escapeLike(term) + "%"

	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" "+op+" ? ESCAPE '\\'")
		args = append(args, like)
	}
	return tx.Where("("+strings.Join(parts, " OR ")+")", args...)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

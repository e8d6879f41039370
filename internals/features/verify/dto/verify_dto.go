package dto

import (
	"bytes"
	"strconv"
	"strings"

	helperAuth "academy_backend/internals/helpers/auth"
)

// FlexID accepts 12 and "12".
type FlexID uint

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		// surfaced as "missing id" by the controller
		*f = 0
		return nil
	}
	*f = FlexID(n)
	return nil
}

// VerifyPasswordRequest; postType/postId are the names older clients send.
type VerifyPasswordRequest struct {
	ResourceType string `json:"resourceType"`
	PostType     string `json:"postType"`
	ID           FlexID `json:"id"`
	PostID       FlexID `json:"postId"`
	Password     string `json:"password"`
}

func (r VerifyPasswordRequest) Type() string {
	if t := strings.TrimSpace(r.ResourceType); t != "" {
		return t
	}
	return strings.TrimSpace(r.PostType)
}

func (r VerifyPasswordRequest) RowID() uint {
	if r.ID != 0 {
		return uint(r.ID)
	}
	return uint(r.PostID)
}

var resourceTables = map[string]string{
	"parent":      helperAuth.TableParentPosts,
	"parent-post": helperAuth.TableParentPosts,
	"qna":         helperAuth.TableQnaPosts,
	"comment":     helperAuth.TableComments,
}

// Table maps the resource type to its guarded table.
func Table(resourceType string) (string, bool) {
	t, ok := resourceTables[strings.ToLower(resourceType)]
	return t, ok
}

type VerifyPasswordResponse struct {
	Verified bool `json:"verified"`
}

// Package models defines the data shapes the client exchanges with the blog
// backend: users, posts, categories, and the canonical record identifier.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is the canonical record identifier. Backends are inconsistent about
// whether ids arrive as JSON numbers or numeric strings ("5" vs 5), so ID
// normalizes both forms at the decode boundary; everything above it compares
// ids with plain ==.
type ID int64

// ParseID converts a user-supplied string (e.g. a CLI argument) into an ID.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return ID(n), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", string(data))
	}
	*id = ID(n)
	return nil
}

// UserRecord is the backend's representation of an account. The client does
// not validate its shape beyond presence; absent fields stay zero.
type UserRecord struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post is a blog article. The backend may attach more fields than these;
// unknown fields are ignored on decode.
type Post struct {
	ID         ID     `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CategoryID ID     `json:"category_id"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// Category groups posts.
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

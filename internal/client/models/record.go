// Package models defines the data shapes shared by the FinSync client:
// the session record kept on this machine and the remote API payloads.
package models

import (
	"encoding/json"
	"time"
)

// Categories is an ordered set of category names. Order is the order in
// which names were first seen; duplicates and empty names are dropped.
type Categories []string

// NewCategories builds an ordered set from values.
func NewCategories(values ...string) Categories {
	seen := make(map[string]struct{}, len(values))
	out := make(Categories, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Clone returns an independent copy; a nil set becomes an empty one.
func (c Categories) Clone() Categories {
	out := make(Categories, len(c))
	copy(out, c)
	return out
}

// MarshalJSON always produces an array, "[]" for an empty or nil set.
func (c Categories) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(c.Clone()))
}

// UnmarshalJSON accepts an array or null and normalises it into a set.
func (c *Categories) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = NewCategories(raw...)
	return nil
}

// Record is the durable projection of the logged-in user.
type Record struct {
	ID              string
	FullName        string
	Email           string
	ProfileImageURL string
	IsAdmin         bool
	Categories      Categories
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	r.Categories = r.Categories.Clone()
	return r
}

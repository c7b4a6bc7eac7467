package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/finsync/internal/client/models"
)

// Session is the flattened session as it sits in the store.
type Session struct {
	Token  string
	Record models.Record
}

// SessionValues flattens token and r into the stored key/value form.
// Categories are JSON encoded, "[]" when empty.
func SessionValues(token string, r models.Record) (map[string]string, error) {
	categories, err := json.Marshal(r.Categories)
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}

	return map[string]string{
		KeyToken:           token,
		KeyID:              r.ID,
		KeyName:            r.FullName,
		KeyEmail:           r.Email,
		KeyProfileImageURL: r.ProfileImageURL,
		KeyCategories:      string(categories),
	}, nil
}

// SaveSession writes token and the flattened record in one commit.
func SaveSession(ctx context.Context, s Store, token string, r models.Record) error {
	values, err := SessionValues(token, r)
	if err != nil {
		return err
	}
	if err := s.Commit(ctx, values); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession reads the flattened session back. ok is false when no token is
// stored. Undecodable categories are treated as an empty set.
func LoadSession(ctx context.Context, s Store) (Session, bool, error) {
	token, ok, err := s.Get(ctx, KeyToken)
	if err != nil {
		return Session{}, false, err
	}
	if !ok || token == "" {
		return Session{}, false, nil
	}

	get := func(key string) (string, error) {
		v, _, err := s.Get(ctx, key)
		return v, err
	}

	var r models.Record
	if r.ID, err = get(KeyID); err != nil {
		return Session{}, false, err
	}
	if r.FullName, err = get(KeyName); err != nil {
		return Session{}, false, err
	}
	if r.Email, err = get(KeyEmail); err != nil {
		return Session{}, false, err
	}
	if r.ProfileImageURL, err = get(KeyProfileImageURL); err != nil {
		return Session{}, false, err
	}

	raw, err := get(KeyCategories)
	if err != nil {
		return Session{}, false, err
	}
	r.Categories = models.Categories{}
	if raw != "" {
		var c models.Categories
		if json.Unmarshal([]byte(raw), &c) == nil {
			r.Categories = c
		}
	}

	return Session{Token: token, Record: r}, true, nil
}

// ClearSession removes the session keys in one commit. Other keys, such as
// the theme preference, stay.
func ClearSession(ctx context.Context, s Store) error {
	if err := s.Commit(ctx, nil, SessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ProfileImageURL reads the stored profile image URL, "" when absent.
func ProfileImageURL(ctx context.Context, s Store) (string, error) {
	v, _, err := s.Get(ctx, KeyProfileImageURL)
	return v, err
}

// Token reads the stored bearer token, "" when absent.
func Token(ctx context.Context, s Store) (string, error) {
	v, _, err := s.Get(ctx, KeyToken)
	return v, err
}

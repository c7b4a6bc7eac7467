package models

import "time"

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login call. Token and User are
// both required; a response missing either is malformed.
type LoginResponse struct {
	Token   string       `json:"token"`
	User    *UserPayload `json:"user"`
	Message string       `json:"message,omitempty"`
}

// UserPayload is the user object as the server sends it.
type UserPayload struct {
	ID              string     `json:"_id"`
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	IsAdmin         bool       `json:"isAdmin,omitempty"`
	Categories      Categories `json:"categories,omitempty"`
	CreatedAt       string     `json:"createdAt,omitempty"`
	UpdatedAt       string     `json:"updatedAt,omitempty"`
}

// Record converts the payload into a session record. Missing categories
// become an empty set; timestamps that do not parse as RFC 3339 are left zero.
func (u UserPayload) Record() Record {
	return Record{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
		IsAdmin:         u.IsAdmin,
		Categories:      u.Categories.Clone(),
		CreatedAt:       parseTime(u.CreatedAt),
		UpdatedAt:       parseTime(u.UpdatedAt),
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RegisterRequest is the body of the account-creation call.
// ProfileImageURL is null when no image was chosen.
type RegisterRequest struct {
	FullName        string  `json:"fullName"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// RegisterResponse is the body of a successful account-creation call.
type RegisterResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// UploadImageResponse is returned by the asset-upload endpoint.
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// ErrorBody is the JSON error shape of the remote API.
type ErrorBody struct {
	Message string `json:"message,omitempty"`
}

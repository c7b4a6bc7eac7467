package client

import (
	"context"

	"github.com/dmitrijs2005/finsync/internal/client/models"
)

// API paths, relative to the server base URL.
const (
	PathLogin       = "/api/v1/auth/login"
	PathRegister    = "/api/v1/auth/register"
	PathUploadImage = "/api/v1/auth/upload-image"
	PathHealth      = "/api/v1/health"
)

type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (*models.UploadImageResponse, error)
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token to attach, "" for none.
type TokenSource func(ctx context.Context) (string, error)

package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Tokener resolves the authenticated user from a request's bearer token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

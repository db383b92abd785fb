package http

import (
	"context"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/security"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Actor is the request-scoped authorization context. The auth middleware
// populates it from the validated token; handlers never read session state
// from anywhere else.
type Actor struct {
	StaffID  int32
	Username string
	Role     domain.StaffRole
}

func (a *Actor) IsAdmin() bool {
	return a.Role == domain.StaffRoleAdmin
}

func withActor(ctx context.Context, claims *security.ActorClaims) context.Context {
	return context.WithValue(ctx, actorContextKey, &Actor{
		StaffID:  claims.StaffID,
		Username: claims.Username,
		Role:     claims.Role,
	})
}

// ActorFromContext extracts the authenticated actor from the request
// context. It errors when the middleware did not run.
func ActorFromContext(ctx context.Context) (*Actor, error) {
	actor, ok := ctx.Value(actorContextKey).(*Actor)
	if !ok || actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return actor, nil
}

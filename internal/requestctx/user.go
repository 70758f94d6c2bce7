// Package requestctx carries the authenticated caller through request contexts.
package requestctx

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/server/models"
)

type userContextKey struct{}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user *models.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user stored by WithUser, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	if ctx == nil {
		return nil, false
	}
	user, ok := ctx.Value(userContextKey{}).(*models.User)
	return user, ok && user != nil
}

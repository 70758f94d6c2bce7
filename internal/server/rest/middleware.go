package rest

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/requestctx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// requireUser resolves the bearer token to a user and stores it in the
// request context. A missing or malformed header ends the request with 401.
func (s *Server) requireUser() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + common.AuthorizationHeaderName,
		AuthScheme: common.BearerScheme,
		Validator: func(token string, c echo.Context) (bool, error) {
			ctx := c.Request().Context()
			user, err := s.users.Authenticate(ctx, strings.TrimSpace(token))
			if err != nil {
				return false, err
			}
			c.SetRequest(c.Request().WithContext(requestctx.WithUser(ctx, user)))
			return true, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			var missing *middleware.ErrKeyAuthMissing
			if errors.As(err, &missing) {
				return common.ErrorUnauthorized
			}
			return err
		},
	})
}

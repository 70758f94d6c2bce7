package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

const internalErrorDetail = "Internal server error"

// errorStatus maps an error returned by a handler to a status and a
// client-safe detail message.
func errorStatus(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		if he.Code >= http.StatusInternalServerError {
			return he.Code, internalErrorDetail
		}
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusBadRequest, "Already exists"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, common.ErrorValidation):
		return http.StatusUnprocessableEntity, err.Error()
	}
	return http.StatusInternalServerError, internalErrorDetail
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, detail := errorStatus(err)
	if code == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "request failed",
			"error", err,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Detail: detail})
	}
	if err != nil {
		s.logger.Error(c.Request().Context(), "error response failed", "error", err)
	}
}

// withDetail replaces the generic message for target with detail.
func withDetail(err error, target error, code int, detail string) error {
	if errors.Is(err, target) {
		return echo.NewHTTPError(code, detail).SetInternal(err)
	}
	return err
}

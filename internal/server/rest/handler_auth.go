package rest

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/labstack/echo/v4"
)

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (s *Server) home(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "To-Do List API"})
}

// login accepts OAuth2 password-style form fields.
func (s *Server) login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password form fields are required", common.ErrorValidation)
	}

	pair, err := s.users.Login(c.Request().Context(), username, password)
	if err != nil {
		return withDetail(err, common.ErrorUnauthorized, http.StatusUnauthorized, "Incorrect username or password")
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    common.BearerScheme,
	})
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if _, err := s.users.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		return withDetail(err, common.ErrorAlreadyExists, http.StatusBadRequest, "Username already registered")
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User created successfully"})
}

func (s *Server) refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.RefreshToken == "" {
		return fmt.Errorf("%w: refresh_token is required", common.ErrorValidation)
	}

	access, err := s.users.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return withDetail(err, common.ErrorForbidden, http.StatusForbidden, "Invalid refresh token")
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: access, TokenType: common.BearerScheme})
}

// bindBody decodes the JSON body; malformed input is a validation error.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return fmt.Errorf("%w: invalid request body", common.ErrorValidation)
	}
	return nil
}

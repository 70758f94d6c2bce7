// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token refresh and the
// resolution of bearer tokens to users.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/server/auth"
	"github.com/dmitrijs2005/gophtodo/internal/server/config"
	"github.com/dmitrijs2005/gophtodo/internal/server/models"
	"github.com/dmitrijs2005/gophtodo/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
	VerifyAbsent(password string)
}

// UserService provides authentication-related operations:
// - Register: create users with bcrypt-hashed passwords
// - Login: verify credentials and mint a token pair
// - RefreshToken: exchange a refresh token for a new access token
// - Authenticate: resolve an access token to an active user
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	signer                       *auth.Signer
	hasher                       passwordHasher
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*UserService, error) {
	signer, err := auth.NewSigner(cfg.SecretKey, cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return &UserService{
		db:                           db,
		repomanager:                  m,
		signer:                       signer,
		hasher:                       auth.NewPasswordHasher(cfg.BcryptCost),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}, nil
}

// Register creates a new user. A taken username yields
// common.ErrorAlreadyExists before any hashing is done; empty credentials
// yield common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetUserByLogin(ctx, username)
		switch {
		case err == nil:
			return common.ErrorAlreadyExists
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}

		user, err = repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password against the stored bcrypt hash and, on
// success, returns a new TokenPair.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.VerifyAbsent(password)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	if !s.hasher.Verify(user.PasswordHash, password) || !user.IsActive {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(user.UserName)
}

// RefreshToken validates a refresh token and returns a new access token.
// The refresh token itself stays valid until it expires.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	username, err := s.signer.GetSubjectFromToken(refreshToken, common.TokenKindRefresh)
	if err != nil {
		return "", common.ErrorForbidden
	}
	access, err := s.signer.GenerateToken(username, common.TokenKindAccess, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error signing access token: %w", err)
	}
	return access, nil
}

// Authenticate resolves an access token to its user. Invalid tokens and
// unknown or inactive subjects yield common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	username, err := s.signer.GetSubjectFromToken(accessToken, common.TokenKindAccess)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	if !user.IsActive {
		return nil, common.ErrorUnauthorized
	}
	return user, nil
}

func (s *UserService) generateTokenPair(username string) (*TokenPair, error) {
	access, err := s.signer.GenerateToken(username, common.TokenKindAccess, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error signing access token: %w", err)
	}
	refresh, err := s.signer.GenerateToken(username, common.TokenKindRefresh, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error signing refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

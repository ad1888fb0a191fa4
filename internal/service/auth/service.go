package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendease/attendease-backend-go/internal/domain/auth"
	"github.com/attendease/attendease-backend-go/internal/domain/user"
	"github.com/attendease/attendease-backend-go/internal/pkg/database"
	"github.com/attendease/attendease-backend-go/internal/pkg/email"
	"github.com/attendease/attendease-backend-go/internal/pkg/jwt"
	"github.com/attendease/attendease-backend-go/internal/pkg/oauth"
	"github.com/attendease/attendease-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

type AuthServiceImpl struct {
	db          *database.DB
	users       user.UserRepository
	jwtSvc      jwt.Service
	jwtRepo     postgresql.JWTRepository
	googleSvc   oauth.GoogleService
	emailSvc    email.EmailService
	frontendURL string
}

func NewAuthService(
	db *database.DB,
	users user.UserRepository,
	jwtSvc jwt.Service,
	jwtRepo postgresql.JWTRepository,
	googleSvc oauth.GoogleService,
	emailSvc email.EmailService,
	frontendURL string,
) auth.AuthService {
	return &AuthServiceImpl{
		db:          db,
		users:       users,
		jwtSvc:      jwtSvc,
		jwtRepo:     jwtRepo,
		googleSvc:   googleSvc,
		emailSvc:    emailSvc,
		frontendURL: frontendURL,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.Active {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return a.issueTokens(ctx, userData, session)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, userAgent string) (string, error) {
	state := a.googleSvc.GenerateState(userAgent)
	if state == "" {
		return "", fmt.Errorf("failed to generate oauth state")
	}
	return a.googleSvc.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.AuthService. Google sign-in only works
// for accounts an administrator already created: there is no self-signup.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := a.googleSvc.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	info, err := a.googleSvc.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.users.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, err
	}

	if !userData.Active {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	if userData.OAuthProviderID == nil {
		if _, err := a.users.LinkGoogleAccount(ctx, info.GoogleID, info.Email); err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return a.issueTokens(ctx, userData, session)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var resp auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		resp.AccessToken, resp.AccessTokenExpiresIn, err = a.jwtSvc.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.jwtSvc.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.jwtRepo.CreateRefreshToken(txCtx, userData.ID, resp.RefreshToken, resp.RefreshTokenExpiresIn, session); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	resp.Role = string(userData.Role)
	resp.EmployeeID = userData.EmployeeID
	return resp, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.jwtSvc.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.jwtRepo.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}
	if !userData.Active {
		return auth.AccessTokenResponse{}, user.ErrUserInactive
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.jwtSvc.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := a.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// ForgotPassword implements auth.AuthService. Unknown addresses return
// success so the endpoint cannot be used to probe which emails exist.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			slog.Info("Password reset requested for unknown email", "email", req.Email)
			return nil
		}
		return err
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	_, resetToken, err := a.jwtSvc.JWTAuth().Encode(map[string]interface{}{
		"user_id": userData.ID,
		"type":    "password_reset",
		"exp":     expiresAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", a.frontendURL, resetToken)

	go func() {
		if err := a.emailSvc.SendPasswordReset(userData.Email, resetLink, expiresAt.UTC().Format(time.RFC3339)); err != nil {
			slog.Error("Failed to send password reset email", "user_id", userData.ID, "error", err)
		}
	}()

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	token, err := jwtauth.VerifyToken(a.jwtSvc.JWTAuth(), req.Token)
	if err != nil {
		return auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "password_reset" {
		return auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.ErrInvalidToken
	}

	// Single use: a replayed token must fail
	if a.jwtSvc.IsTokenRevoked(req.Token) {
		return auth.ErrInvalidToken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.users.UpdatePassword(ctx, userID, string(passwordHash)); err != nil {
		return err
	}

	a.jwtSvc.RevokeToken(req.Token)
	return nil
}

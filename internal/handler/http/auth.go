package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginHR(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
	}
}

func sessionTracking(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

// Register implements AuthHandler. The route is HR-gated by middleware.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		slog.Error("Register validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered successfully", "user_id", created.ID)
	response.Created(w, "User registered successfully", user.ToResponse(created))
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, a.authService.Login)
}

// LoginHR implements AuthHandler. Same flow as Login with an HR role check
// folded into the credential check.
func (a *AuthHandlerImpl) LoginHR(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, a.authService.LoginHR)
}

func (a *AuthHandlerImpl) login(w http.ResponseWriter, r *http.Request, authenticate func(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error)) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := authenticate(r.Context(), loginReq, sessionTracking(r))
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	slog.Info("User logged in successfully")
	response.Created(w, "User logged in successfully", tokenResponse)
}

// LoginWithGoogle implements AuthHandler: redirects to Google's consent page.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if !a.googleService.Enabled() {
		response.HandleError(w, auth.ErrSSODisabled)
		return
	}

	state := a.googleService.GenerateState(r.UserAgent())
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler: exchanges the code, verifies the
// Google account and signs the matching user in.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if !a.googleService.Enabled() {
		response.HandleError(w, auth.ErrSSODisabled)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	token, err := a.googleService.VerifyToken(r.Context(), code)
	if err != nil {
		slog.Error("OAuthCallbackGoogle token exchange error", "error", err)
		response.HandleError(w, auth.ErrInvalidCredentials)
		return
	}

	info, err := a.googleService.VerifyUser(r.Context(), token)
	if err != nil || !info.VerifiedEmail {
		slog.Error("OAuthCallbackGoogle verify user error", "error", err)
		response.HandleError(w, auth.ErrInvalidCredentials)
		return
	}

	tokenResponse, err := a.authService.LoginWithGoogle(r.Context(), info.Email, info.GoogleID, sessionTracking(r))
	if err != nil {
		slog.Error("OAuthCallbackGoogle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	slog.Info("User logged in via Google")
	response.Created(w, "User logged in successfully", tokenResponse)
}

// refreshTokenFrom prefers the HttpOnly cookie and falls back to the body.
func refreshTokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req auth.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}

// RefreshToken implements AuthHandler: rotates a valid refresh token.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := refreshTokenFrom(r)
	if refreshToken == "" {
		response.BadRequest(w, "Missing refresh token", nil)
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshToken, sessionTracking(r))
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "Token refreshed successfully", tokenResponse)
}

// Logout implements AuthHandler: revokes the refresh token and clears the cookie.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := refreshTokenFrom(r)
	if refreshToken == "" {
		response.BadRequest(w, "Missing refresh token", nil)
		return
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Expire the cookie client-side too.
	http.SetCookie(w, a.jwtService.RefreshTokenCookie("", 0))
	slog.Info("User logged out successfully")
	w.WriteHeader(http.StatusResetContent)
}

package auth

import "context"

// AuthService covers the manager sign-in flows. The activity core
// never inspects authentication state; it only runs behind the
// verified-token middleware.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context) (UserResponse, error)
}

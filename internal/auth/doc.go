// Package auth provides authentication and session lifecycle for the API.
//
// Identity is carried by a pair of stateless JWTs: a short-lived access token
// sent as a Bearer header on every protected request, and a long-lived refresh
// token delivered in an HTTP-only cookie and used only to mint new access
// tokens. The two token types are signed with distinct secrets. No session
// state is kept server-side; tokens die by expiry or secret rotation.
//
// # Configuration
//
//	JWT_ACCESS_SECRET_KEY=<secret>   # signs access tokens
//	JWT_REFRESH_SECRET_KEY=<secret>  # signs refresh tokens
//	ACCESS_TOKEN_TTL=15m
//	REFRESH_TOKEN_TTL=720h           # 30 days
//	BCRYPT_COST=12
//	MIN_PASSWORD_LENGTH=8
//
// # Usage
//
//	tokens := auth.NewTokenManager(cfg.Auth)
//	service := auth.NewService(usersRepo, tokens, cfg.Auth)
//	middleware := auth.NewMiddleware(tokens, usersRepo)
//
//	api.POST("/expenses", middleware.RequireAuth(), createExpense)
//
// Extract the caller in handlers:
//
//	userID := auth.GetUserID(c)
//
// Accounts created before hashing was introduced store their password in
// plaintext; the first successful login re-hashes the value in place. See
// VerifyPassword for the dispatch rules.
package auth

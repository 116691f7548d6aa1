package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/presentation/controller"
)

// RegisterPublicRoutes wires the endpoints that work without an access token.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterPublicRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, tokens *auth.TokenService) {
	registerCtl := controller.NewRegisterUserController(pool)
	loginCtl := controller.NewLoginController(pool, tokens)
	refreshCtl := controller.NewRefreshTokenController(pool, tokens)
	logoutCtl := controller.NewLogoutController()

	// POST /users/register -> create an account
	g.POST("/users/register", registerCtl.Handle())

	// POST /users/login -> authenticate and receive the token cookies
	g.POST("/users/login", loginCtl.Handle())

	// POST /users/refresh -> mint a new access token from a refresh token
	g.POST("/users/refresh", refreshCtl.Handle())

	// POST /users/logout -> drop the access token cookie
	g.POST("/users/logout", logoutCtl.Handle())
}

// RegisterAuthedRoutes wires the endpoints that require a valid access token.
func RegisterAuthedRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	meCtl := controller.NewMeController(pool)
	usernameCtl := controller.NewGetUsernameController(pool)

	// GET /users/me -> own profile
	g.GET("/users/me", meCtl.Handle())

	// POST /users/username -> resolve a user id to a username
	g.POST("/users/username", usernameCtl.Handle())
}

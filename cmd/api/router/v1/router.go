package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	qport "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/queue/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/metrics"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/mw"
	chatHTTP "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/presentation/http"
	groupHTTP "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/presentation/http"
	identityHTTP "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/presentation/http"
)

// Deps bundles what the route tree needs from the composition root.
type Deps struct {
	Pool     *pgxpool.Pool
	Queue    qport.Client
	Registry *realtime.Registry
	Fanout   *realtime.Fanout
	Tokens   *auth.TokenService
	Resolver auth.IdentityResolver
	Env      string
}

// RegisterRoutes mounts all version 1 API routes under /api/v1, the service
// endpoints at the root, and the two static pages.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(mw.CORS(d.Env))
	r.Use(metrics.GinMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.StaticFile("/login", "./web/login.html")
	r.GET("/chat", auth.PageMiddleware(d.Tokens, d.Resolver), func(c *gin.Context) {
		c.File("./web/chat.html")
	})

	v1 := r.Group("/api/v1")
	v1.Use(mw.RateLimit(20, 40))

	// Pass the DB connection and queue client down to the HTTP layer.
	identityHTTP.RegisterPublicRoutes(v1, d.Pool, d.Tokens)

	authed := v1.Group("")
	authed.Use(auth.Middleware(d.Tokens, d.Resolver))
	identityHTTP.RegisterAuthedRoutes(authed, d.Pool)
	chatHTTP.RegisterRoutes(authed, d.Pool, d.Queue, d.Fanout)
	groupHTTP.RegisterRoutes(authed, d.Pool, d.Queue, d.Fanout)

	// GET /api/v1/ws -> websocket endpoint for the per-user live channel
	authed.GET("/ws", realtime.Serve(d.Registry))
}

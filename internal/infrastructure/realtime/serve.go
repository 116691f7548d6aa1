package realtime

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin pages may open the socket; the access token is the gate.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const readWait = 60 * time.Second

// Serve returns the websocket endpoint handler. The route must run behind the
// auth middleware; the authenticated user becomes the registry key. The
// channel is push-only: inbound frames are drained solely to detect
// disconnect, and any read error unregisters the connection.
func Serve(reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("ws upgrade failed")
			return
		}

		conn := NewConnection(userID, ws)
		reg.Attach(conn)
		log.Debug().Str("user_id", userID).Str("session", conn.ID).Msg("live channel opened")

		defer func() {
			reg.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "")
			log.Debug().Str("user_id", userID).Str("session", conn.ID).Msg("live channel closed")
		}()

		ws.SetReadLimit(1 << 16)
		_ = ws.SetReadDeadline(time.Now().Add(readWait))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(readWait))
		})

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
			_ = ws.SetReadDeadline(time.Now().Add(readWait))
		}
	}
}

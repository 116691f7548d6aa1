package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/queue/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/presentation/controller"
)

// RegisterRoutes registers direct-chat HTTP endpoints under the given router
// group. It constructs per-endpoint controllers and binds them directly to
// routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, client qport.Client, fanout *realtime.Fanout) {
	createCtl := controller.NewCreateDirectChatController(pool)
	listCtl := controller.NewListDirectChatsController(pool)
	sendCtl := controller.NewSendDirectMessageController(pool, fanout)
	lateCtl := controller.NewSendDirectMessageLateController(client)
	historyCtl := controller.NewGetDirectMessagesController(pool)

	// POST /api/v1/chats -> open a direct chat with a peer
	g.POST("/chats", createCtl.Handle())

	// GET /api/v1/chats -> list own direct chats
	g.GET("/chats", listCtl.Handle())

	// POST /api/v1/chats/:chatId/messages -> send a message now
	g.POST("/chats/:chatId/messages", sendCtl.Handle())

	// POST /api/v1/chats/:chatId/messages_late -> schedule a delayed send
	g.POST("/chats/:chatId/messages_late", lateCtl.Handle())

	// GET /api/v1/chats/:chatId/messages -> fetch chat history
	g.GET("/chats/:chatId/messages", historyCtl.Handle())
}

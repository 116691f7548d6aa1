package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	qport "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/queue/port"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/presentation/controller"
)

// RegisterRoutes registers group-chat HTTP endpoints under the given router
// group. It constructs per-endpoint controllers and binds them directly to
// routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, client qport.Client, fanout *realtime.Fanout) {
	createCtl := controller.NewCreateGroupController(pool)
	listCtl := controller.NewListGroupsController(pool)
	addMemberCtl := controller.NewAddMemberController(pool)
	removeMemberCtl := controller.NewRemoveMemberController(pool)
	leaveCtl := controller.NewLeaveGroupController(pool)
	listMembersCtl := controller.NewListMembersController(pool)
	ownerCtl := controller.NewGetGroupOwnerController(pool)
	sendCtl := controller.NewSendGroupMessageController(pool, fanout)
	lateCtl := controller.NewSendGroupMessageLateController(client)
	historyCtl := controller.NewGetGroupMessagesController(pool)

	// POST /api/v1/group_chats -> create a group
	g.POST("/group_chats", createCtl.Handle())

	// GET /api/v1/group_chats -> list own groups
	g.GET("/group_chats", listCtl.Handle())

	// POST /api/v1/group_chats/:groupId/members -> invite a user
	g.POST("/group_chats/:groupId/members", addMemberCtl.Handle())

	// DELETE /api/v1/group_chats/:groupId/members/:username -> kick a member
	g.DELETE("/group_chats/:groupId/members/:username", removeMemberCtl.Handle())

	// DELETE /api/v1/group_chats/:groupId/exit -> leave the group
	g.DELETE("/group_chats/:groupId/exit", leaveCtl.Handle())

	// GET /api/v1/group_chats/:groupId/members -> member list
	g.GET("/group_chats/:groupId/members", listMembersCtl.Handle())

	// GET /api/v1/group_chats/:groupId/owner -> who owns the group
	g.GET("/group_chats/:groupId/owner", ownerCtl.Handle())

	// POST /api/v1/group_chats/:groupId/messages -> send a message now
	g.POST("/group_chats/:groupId/messages", sendCtl.Handle())

	// POST /api/v1/group_chats/:groupId/messages_late -> schedule a delayed send
	g.POST("/group_chats/:groupId/messages_late", lateCtl.Handle())

	// GET /api/v1/group_chats/:groupId/messages -> fetch group history
	g.GET("/group_chats/:groupId/messages", historyCtl.Handle())
}

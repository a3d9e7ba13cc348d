package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kunci-cimahi/service-booking/internal/auth"
	"github.com/kunci-cimahi/service-booking/internal/realtime"
	"github.com/kunci-cimahi/service-booking/internal/response"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// RealtimeHandler upgrades admin dashboard connections to WebSocket and
// streams booking change notifications.
type RealtimeHandler struct {
	hub        *realtime.Hub
	jwtManager *auth.JWTManager
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

// NewRealtimeHandler creates a new RealtimeHandler.
func NewRealtimeHandler(hub *realtime.Hub, jwtManager *auth.JWTManager, logger *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:        hub,
		jwtManager: jwtManager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins already restricted by the CORS layer for the REST
			// API; the socket carries no input besides the token.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// RegisterRoutes registers the WebSocket endpoint.
func (h *RealtimeHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/admin/ws", h.Serve)
}

// Serve handles GET /api/v1/admin/ws?token=... — browsers cannot set an
// Authorization header on a WebSocket, so the session token rides in the
// query string and is validated before the upgrade.
func (h *RealtimeHandler) Serve(c *gin.Context) {
	claims, err := h.jwtManager.ValidateToken(c.Query("token"))
	if err != nil || claims.Role != auth.RoleAdmin {
		response.Unauthorized(c, "invalid or expired token")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &realtime.Client{
		ID:   uuid.NewString(),
		Send: make(chan []byte, 16),
	}
	h.hub.Register(client)

	h.logger.Info("dashboard connected",
		zap.String("client_id", client.ID),
		zap.Int("clients", h.hub.ClientCount()),
	)

	go h.writePump(conn, client)
	h.readPump(conn, client)
}

// writePump drains the client's send channel onto the socket. The first
// message is a subscription acknowledgment so the dashboard can flip its
// indicator from "Connecting" to "Live".
func (h *RealtimeHandler) writePump(conn *websocket.Conn, client *realtime.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(gin.H{"type": "subscribed"}); err != nil {
		return
	}

	for {
		select {
		case payload, ok := <-client.Send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames and unregisters the client when the
// socket closes, so a page teardown releases its subscription.
func (h *RealtimeHandler) readPump(conn *websocket.Conn, client *realtime.Client) {
	defer func() {
		h.hub.Unregister(client)
		_ = conn.Close()
		h.logger.Info("dashboard disconnected",
			zap.String("client_id", client.ID),
			zap.Int("clients", h.hub.ClientCount()),
		)
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

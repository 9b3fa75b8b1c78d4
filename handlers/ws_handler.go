package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	ws "github.com/slavikovics/EducationalSystem-sub000/websocket"
)

func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ResultsFeedSocket keeps the connection open and streams submission events
// pushed by the hub. The client never sends payloads; reads only serve to
// detect the disconnect.
var ResultsFeedSocket = websocket.New(func(conn *websocket.Conn) {
	token := conn.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	client := &ws.Client{
		UserID: uint(claims["user_id"].(float64)),
		Conn:   conn,
	}

	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
})

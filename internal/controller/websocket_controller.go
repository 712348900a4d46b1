package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/restychess/backend/internal/service"
	"github.com/restychess/backend/internal/ws"
)

type WebSocketController struct {
	boardService *service.BoardService
}

func NewWebSocketController(boardService *service.BoardService) *WebSocketController {
	return &WebSocketController{
		boardService: boardService,
	}
}

// HandleConnection is called when a new board watch connection is
// established. The watcher gets the current state immediately and a fresh
// state after every board mutation.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	watcherID := wsc.boardService.RegisterWatcher(c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			wsc.sendError(c, "malformed message")
			continue
		}

		if err := wsc.handleMessage(c, msg); err != nil {
			log.Printf("handle error: %v", err)
			wsc.sendError(c, err.Error())
		}
	}

	// Clean up when connection closes
	wsc.boardService.UnregisterWatcher(watcherID)
}

// Watchers are mostly passive, but they may ask for a state refresh.
func (wsc *WebSocketController) handleMessage(c *websocket.Conn, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeBoardState:
		state, err := json.Marshal(wsc.boardService.GetBoardState())
		if err != nil {
			return err
		}
		return c.WriteJSON(ws.Message{
			Type:    ws.MessageTypeBoardState,
			Payload: json.RawMessage(state),
		})

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, _ := json.Marshal(map[string]string{"error": errorMsg})
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	})
}

package handlers

import (
	"net/http"
	"time"
	"volley/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// HandleGameSocket upgrades the connection and parks it on the game topic.
// Subscribers only listen; anything they send is drained and ignored.
func (api *API) HandleGameSocket(c *gin.Context) {
	gameID := c.Param("gameId")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.LogError("Failed to upgrade to WebSocket: %v", err)
		return
	}

	ws.SetReadLimit(512)
	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	sub := api.Hub.Subscribe(gameID, ws)
	utils.LogSuccess("Subscriber joined game %s (%d on topic)", gameID, api.Hub.Subscribers(gameID))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					utils.LogWarning("Read error on game %s: %v", gameID, err)
				}
				return
			}
		}
	}()

	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-done:
			api.Hub.Unsubscribe(gameID, sub)
			ws.Close()
			utils.LogInfo("Subscriber left game %s", gameID)
			return
		case <-pingTicker.C:
			if err := sub.Ping(); err != nil {
				api.Hub.Unsubscribe(gameID, sub)
				ws.Close()
				<-done
				utils.LogInfo("Subscriber left game %s", gameID)
				return
			}
		}
	}
}

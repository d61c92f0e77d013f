package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{

	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// probably more that enough but this is a good average size
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWsEvents pushes the same event feed as HandleEvents over a
// websocket connection, for clients that hold a socket open instead of
// an SSE stream. One JSON frame per event, backlog then live.
func (rp RequestProcessor) HandleWsEvents(w http.ResponseWriter, r *http.Request) {
	gameUuid := r.PathValue("game_id")
	playerUuid := r.PathValue("player_id")

	game, err := rp.gameManager.GetGame(gameUuid)
	if err != nil {
		writeGameError(w, err)
		return
	}

	backlog, live, cancel, err := game.Subscribe(playerUuid)
	if err != nil {
		writeGameError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		cancel()
		return
	}

	defer func() {
		cancel()
		conn.Close()
		log.Println("event stream closed:", conn.RemoteAddr().String())
	}()

	// The feed is one way. The read loop only exists to notice the
	// client closing the socket.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for _, ev := range backlog {
		if err := conn.WriteJSON(ev); err != nil {
			return
		}
	}

	for ev := range live {
		if err := conn.WriteJSON(ev); err != nil {
			return
		}
	}
}

package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	mb "github.com/mkarimi21/seabattle-backend/models/battleship"
)

// HandleEvents streams a player's event feed as server-sent events:
// the full ordered backlog first, then live events as they are logged.
// The stream ends when the client goes away or the subscriber falls too
// far behind, reconnecting replays the backlog so nothing is lost.
func (rp RequestProcessor) HandleEvents(w http.ResponseWriter, r *http.Request) {
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
	defer cancel()

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, struct{}{})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for _, ev := range backlog {
		if err := writeSSE(w, ev); err != nil {
			return
		}
	}
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return

		case ev, open := <-live:
			if !open {
				return
			}
			if err := writeSSE(w, ev); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev mb.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Println("failed to marshal event:", err)
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}

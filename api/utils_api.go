package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	cerr "github.com/mkarimi21/seabattle-backend/internal/error"
	mc "github.com/mkarimi21/seabattle-backend/models/connection"

	"github.com/mkarimi21/seabattle-backend/db/sqlc"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("failed to encode response:", err)
	}
}

// writeGameError maps an engine error to its HTTP status by kind:
// validation 400, protocol 409, not found 404.
func writeGameError(w http.ResponseWriter, err error) {
	gameErr, ok := cerr.AsGameError(err)
	if !ok {
		log.Println("unexpected non-game error:", err)
		writeJSON(w, http.StatusInternalServerError, mc.NewRespErr("Internal", "internal server error"))
		return
	}

	var status int
	switch gameErr.Kind() {
	case cerr.KindValidation:
		status = http.StatusBadRequest
	case cerr.KindProtocol:
		status = http.StatusConflict
	case cerr.KindNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, mc.NewRespErr(gameErr.Code(), gameErr.Error()))
}

// Body decode failures are schema errors, reported before any game
// logic runs. A coordinate-shaped failure keeps its own code so the
// client can tell it apart from malformed JSON.
func writeDecodeError(w http.ResponseWriter, err error) {
	if gameErr, ok := cerr.AsGameError(err); ok {
		writeJSON(w, http.StatusBadRequest, mc.NewRespErr(gameErr.Code(), gameErr.Error()))
		return
	}
	writeJSON(w, http.StatusBadRequest, mc.NewRespErr("InvalidPayload", err.Error()))
}

// Counters are best effort, a failed analytics write never fails the
// game operation that triggered it.
func (rp RequestProcessor) recordAnalytics(counter sqlc.AnalyticsCounter) {
	if rp.q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	var err error
	switch counter {
	case sqlc.AnalyticsGameCreated:
		err = rp.q.IncrementGamesCreatedCount(ctx, rp.ServerInet())
	case sqlc.AnalyticsGameFinished:
		err = rp.q.IncrementGamesFinishedCount(ctx, rp.ServerInet())
	case sqlc.AnalyticsShotFired:
		err = rp.q.IncrementShotsFiredCount(ctx, rp.ServerInet())
	}
	if err != nil {
		log.Println("analytics write failed:", err)
	}
}

package api

import (
	"encoding/json"
	"log"
	"net"
	"net/http"

	mb "github.com/mkarimi21/seabattle-backend/models/battleship"
	mc "github.com/mkarimi21/seabattle-backend/models/connection"

	"github.com/mkarimi21/seabattle-backend/db/sqlc"
	"github.com/sqlc-dev/pqtype"
)

// RequestProcessor binds the game engine to its HTTP routes. One
// processor serves every game, the engine's per-game locks keep the
// sessions independent.
type RequestProcessor struct {
	gameManager mb.GameManager
	q           sqlc.Querier
	ipnet       net.IPNet
}

func NewRequestProcessor(gameManager mb.GameManager, q sqlc.Querier) RequestProcessor {
	rp := RequestProcessor{
		gameManager: gameManager,
		q:           q,
	}

	rp.ipnet = getServerIpNet()
	return rp
}

// The analytics counters are keyed by the serving interface address.
// Falls back to loopback when the host has no external interface up.
func getServerIpNet() net.IPNet {
	loopback := net.IPNet{
		IP:   net.IPv4(127, 0, 0, 1),
		Mask: net.CIDRMask(32, 32),
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return loopback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ipnet != nil && ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				return *ipnet
			}
		}
	}

	return loopback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServerInet() pqtype.Inet {
	return pqtype.Inet{IPNet: rp.ipnet, Valid: true}
}

// RegisterRoutes wires the processor into a mux. The paths match the
// original public API of the game service.
func (rp RequestProcessor) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /new_game/", rp.HandleNewGame)
	mux.HandleFunc("GET /join_game/{game_id}", rp.HandleJoinGame)
	mux.HandleFunc("POST /position/{game_id}", rp.HandlePosition)
	mux.HandleFunc("POST /shot/{game_id}", rp.HandleShot)
	mux.HandleFunc("GET /events/{game_id}/{player_id}", rp.HandleEvents)
	mux.HandleFunc("GET /ws/{game_id}/{player_id}", rp.HandleWsEvents)
}

// HandleNewGame creates a game with the caller attached as the host
// player. The returned player uuid is the caller's credential for every
// later call, it is never broadcast.
func (rp RequestProcessor) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	game := rp.gameManager.CreateGame()
	rp.recordAnalytics(sqlc.AnalyticsGameCreated)

	log.Printf("game created: %s", game.Uuid())
	writeJSON(w, http.StatusOK, mc.RespNewGame{
		GameUuid:   game.Uuid(),
		PlayerUuid: game.HostPlayer().Uuid,
	})
}

func (rp RequestProcessor) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	gameUuid := r.PathValue("game_id")

	game, joinPlayer, err := rp.gameManager.JoinGame(gameUuid)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mc.RespJoinGame{
		GameUuid:   game.Uuid(),
		PlayerUuid: joinPlayer.Uuid,
	})
}

func (rp RequestProcessor) HandlePosition(w http.ResponseWriter, r *http.Request) {
	gameUuid := r.PathValue("game_id")

	var req mc.ReqPosition
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}

	game, err := rp.gameManager.GetGame(gameUuid)
	if err != nil {
		writeGameError(w, err)
		return
	}

	if err := game.PlaceFleet(req.PlayerUuid, mb.NewFleet(req.Position)); err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct{}{})
}

func (rp RequestProcessor) HandleShot(w http.ResponseWriter, r *http.Request) {
	gameUuid := r.PathValue("game_id")

	var req mc.ReqShot
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}

	game, err := rp.gameManager.GetGame(gameUuid)
	if err != nil {
		writeGameError(w, err)
		return
	}

	outcome, err := game.Shot(req.PlayerUuid, mb.NewCoordinates(req.X, req.Y))
	if err != nil {
		writeGameError(w, err)
		return
	}

	rp.recordAnalytics(sqlc.AnalyticsShotFired)
	if outcome.FleetDestroyed {
		rp.recordAnalytics(sqlc.AnalyticsGameFinished)
	}

	writeJSON(w, http.StatusOK, mc.RespShot{
		Shot:           outcome.Coordinates,
		Hit:            outcome.Hit,
		Sunk:           outcome.Sunk,
		Length:         outcome.ShipLength,
		FleetDestroyed: outcome.FleetDestroyed,
	})
}

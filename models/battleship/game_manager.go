package battleship

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	cerr "github.com/mkarimi21/seabattle-backend/internal/error"
)

const DefaultGameRetention = time.Minute * 20

type GameManager interface {
	CreateGame() *Game
	JoinGame(gameUuid string) (*Game, *Player, error)
	GetGame(gameUuid string) (*Game, error)
}

// BattleshipGameManager is the process-wide registry of active games.
// The registry lock only guards the map, every in-game mutation is
// serialized by the game's own lock so games never contend with each
// other.
type BattleshipGameManager struct {
	games     map[string]*Game
	retention time.Duration
	mu        sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(retention time.Duration) *BattleshipGameManager {
	if retention <= 0 {
		retention = DefaultGameRetention
	}
	return &BattleshipGameManager{
		games:     make(map[string]*Game, 10),
		retention: retention,
	}
}

func (bgm *BattleshipGameManager) CreateGame() *Game {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	var gameUuid string
	for {
		gameUuid = uuid.NewString()[:6]
		if _, prs := bgm.games[gameUuid]; !prs {
			break
		}
	}

	bgm.games[gameUuid] = newGame(gameUuid)
	return bgm.games[gameUuid]
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	return game, nil
}

func (bgm *BattleshipGameManager) JoinGame(gameUuid string) (*Game, *Player, error) {
	game, err := bgm.GetGame(gameUuid)
	if err != nil {
		return nil, nil, err
	}

	joinPlayer, err := game.Join()
	if err != nil {
		return nil, nil, err
	}
	return game, joinPlayer, nil
}

// CleanupPeriodically reclaims games that have been idle past the
// retention window. Reclaim checks take the per-game lock, so teardown
// never races an in-flight join, placement or shot.
func (bgm *BattleshipGameManager) CleanupPeriodically() {
	assumedStaleGames := 10

	for {
		time.Sleep(bgm.retention)

		bgm.mu.Lock()
		toDelete := make([]string, 0, assumedStaleGames)
		for gameUuid, game := range bgm.games {
			if game.IsReclaimable(bgm.retention) {
				toDelete = append(toDelete, gameUuid)
			}
		}

		for _, gameUuid := range toDelete {
			delete(bgm.games, gameUuid)
			log.Printf("reclaimed idle game: %s", gameUuid)
		}
		bgm.mu.Unlock()
	}
}

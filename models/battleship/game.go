package battleship

import (
	"sync"
	"time"

	cerr "github.com/mkarimi21/seabattle-backend/internal/error"
)

type Phase uint8

const (
	PhaseWaitingForOpponent Phase = iota
	PhasePlacement
	PhaseInPlay
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingForOpponent:
		return "waiting_for_opponent"
	case PhasePlacement:
		return "placement"
	case PhaseInPlay:
		return "in_play"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Game is one two-player session: two boards, the phase machine, the
// turn marker and the event log. Every state-mutating operation runs
// under one mutex so concurrent joins, placements and shots resolve
// deterministically and subscribers never observe a torn state.
type Game struct {
	mu           sync.Mutex
	uuid         string
	phase        Phase
	hostPlayer   *Player
	joinPlayer   *Player
	players      map[string]*Player
	onMove       *Player
	winner       *Player
	log          *EventLog
	lastActivity time.Time
}

func newGame(gameUuid string) *Game {
	hostPlayer := NewPlayer(true)

	game := &Game{
		uuid:         gameUuid,
		phase:        PhaseWaitingForOpponent,
		hostPlayer:   hostPlayer,
		players:      map[string]*Player{hostPlayer.Uuid: hostPlayer},
		onMove:       hostPlayer,
		log:          NewEventLog(),
		lastActivity: time.Now(),
	}
	return game
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) HostPlayer() *Player {
	return g.hostPlayer
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Winner returns the role of the winning player, empty while the game
// is not finished.
func (g *Game) Winner() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.winner == nil {
		return ""
	}
	return g.winner.Role()
}

// Join attaches the second player and moves the game to the placement
// phase. Exactly one of two concurrent calls can succeed, the loser
// gets GameFull and the existing join player is left untouched.
func (g *Game) Join() (*Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.joinPlayer != nil {
		return nil, cerr.ErrGameFull(g.uuid)
	}

	joinPlayer := NewPlayer(false)
	g.joinPlayer = joinPlayer
	g.players[joinPlayer.Uuid] = joinPlayer
	g.phase = PhasePlacement
	g.touch()

	g.log.Append(EventPlayerJoined, PlayerJoinedPayload{Role: joinPlayer.Role()})
	return joinPlayer, nil
}

// PlaceFleet submits one player's placement. Once both boards are ready
// the game transitions to in-play with the host on move.
func (g *Game) PlaceFleet(playerUuid string, fleet Fleet) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, prs := g.players[playerUuid]
	if !prs {
		return cerr.ErrPlayerNotExist(playerUuid)
	}

	switch g.phase {
	case PhaseFinished:
		return cerr.ErrGameOver(g.uuid)
	case PhasePlacement:
	default:
		return cerr.ErrNotYourPhase(g.phase.String())
	}

	if err := player.Board().PlaceFleet(fleet); err != nil {
		return err
	}
	g.touch()

	g.log.Append(EventPlacementAccepted, PlacementAcceptedPayload{Role: player.Role()})

	if g.hostPlayer.Board().IsReady() && g.joinPlayer.Board().IsReady() {
		g.phase = PhaseInPlay
	}
	return nil
}

// Shot resolves one shot through the turn gate into the opponent's
// board. The turn flips on every accepted shot, hit or miss. A shot
// that destroys the opponent's fleet finishes the game.
func (g *Game) Shot(playerUuid string, c Coordinates) (ShotOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	shooter, prs := g.players[playerUuid]
	if !prs {
		return ShotOutcome{}, cerr.ErrPlayerNotExist(playerUuid)
	}

	switch g.phase {
	case PhaseFinished:
		return ShotOutcome{}, cerr.ErrGameOver(g.uuid)
	case PhaseInPlay:
	default:
		return ShotOutcome{}, cerr.ErrNotYourPhase(g.phase.String())
	}

	if !c.InBounds() {
		return ShotOutcome{}, cerr.ErrOutOfBounds(c.X, c.Y)
	}

	if g.onMove != shooter {
		return ShotOutcome{}, cerr.ErrNotYourTurn(playerUuid)
	}

	defender := g.otherPlayer(shooter)
	outcome, err := defender.Board().ReceiveShot(c)
	if err != nil {
		// A duplicate shot neither mutates the board nor consumes
		// the turn.
		return ShotOutcome{}, err
	}

	g.onMove = defender
	g.touch()

	if outcome.FleetDestroyed {
		g.phase = PhaseFinished
		g.winner = shooter
	}

	g.log.Append(EventShotResult, ShotResultPayload{
		Role:           shooter.Role(),
		Shot:           outcome.Coordinates,
		Hit:            outcome.Hit,
		Sunk:           outcome.Sunk,
		Length:         outcome.ShipLength,
		FleetDestroyed: outcome.FleetDestroyed,
	})
	if outcome.FleetDestroyed {
		g.log.Append(EventGameOver, GameOverPayload{Winner: shooter.Role()})
	}
	return outcome, nil
}

// Subscribe opens an event subscription for one of the game's players,
// returning the ordered backlog and a live channel.
func (g *Game) Subscribe(playerUuid string) ([]Event, <-chan Event, func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	player, prs := g.players[playerUuid]
	if !prs {
		return nil, nil, nil, cerr.ErrPlayerNotExist(playerUuid)
	}
	g.touch()

	backlog, live, cancel := g.log.Subscribe(player.Uuid)
	return backlog, live, cancel, nil
}

// Events returns the ordered log written so far.
func (g *Game) Events() []Event {
	return g.log.Events()
}

// IsReclaimable reports whether the game has been idle past the
// retention window. Polling and event subscriptions count as activity,
// so a finished game survives as long as a client still looks at it.
func (g *Game) IsReclaimable(retention time.Duration) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return time.Since(g.lastActivity) > retention
}

func (g *Game) otherPlayer(p *Player) *Player {
	if p.IsHost {
		return g.joinPlayer
	}
	return g.hostPlayer
}

func (g *Game) touch() {
	g.lastActivity = time.Now()
}

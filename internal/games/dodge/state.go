package dodge

import (
	"github.com/vovakirdan/rocket-dodge/internal/core"
)

// Phase is a state of the game state machine.
type Phase int

const (
	PhaseMenu          Phase = iota // Title screen, waiting for continue
	PhasePlaying                    // Obstacles spawning
	PhaseLifeLost                   // Frozen after a hit
	PhaseLevelComplete              // Quota met, waiting for continue on a clear field
	PhaseGameOver
	PhaseVictory
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLifeLost:
		return "life_lost"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Active reports whether a run is in progress.
func (p Phase) Active() bool {
	return p == PhasePlaying || p == PhaseLifeLost || p == PhaseLevelComplete
}

// moving reports whether entities advance in this phase.
func (p Phase) moving() bool {
	return p == PhasePlaying || p == PhaseLevelComplete
}

// startGame resets the run and schedules the first spawn.
func (g *Game) startGame() {
	g.clock.NewEpoch()
	g.lanes.Reset()

	g.obstacles = nil
	g.powerUps = nil
	g.lasers = nil
	g.passed, g.spawned = 0, 0
	g.score = 0
	g.winner = 0
	g.paused = false
	g.players = g.newPlayers()

	if g.mode == ModeSolo {
		g.level = g.cfg.Gameplay.StartLevel
		if g.level < 1 {
			g.level = 1
		}
	} else {
		g.level = 0
	}

	g.phase = PhasePlaying
	g.spawnHandle = g.clock.After(ms(g.cfg.Timing.LevelStartDelayMS), g.trySpawnObstacle)
	g.emit("game started", "mode", g.mode.String(), "level", g.level)
}

// loseLife charges a life to every struck player and either ends the game or
// freezes the field until resumeLife runs.
func (g *Game) loseLife(struck ...core.PlayerID) {
	if !g.phase.moving() || len(struck) == 0 {
		return
	}

	for _, id := range struck {
		p := g.player(id)
		if p == nil {
			continue
		}
		p.Lives--
		g.emit("life lost", "player", id.String(), "lives", p.Lives)
	}

	g.spawnHandle.Cancel()

	var dead []core.PlayerID
	for _, p := range g.players {
		if p.Lives <= 0 {
			dead = append(dead, p.ID)
		}
	}
	if len(dead) > 0 {
		if g.mode == ModeVersus && len(dead) == 1 {
			g.winner = dead[0].Opponent()
		}
		g.endGame()
		return
	}

	g.phase = PhaseLifeLost
	ids := append([]core.PlayerID(nil), struck...)
	g.resumeHandle = g.clock.After(ms(g.cfg.Timing.LifeLossPauseMS), func() {
		g.resumeLife(ids)
	})
}

// resumeLife clears the field after a life loss and puts play back in motion.
func (g *Game) resumeLife(struck []core.PlayerID) {
	if g.phase != PhaseLifeLost {
		return
	}

	// Obstacles still on screen were never passed; they spawn again.
	if g.mode == ModeSolo {
		g.spawned = max(g.spawned-len(g.obstacles), 0)
	}
	g.obstacles = nil
	g.powerUps = nil
	g.lasers = nil

	for _, id := range struck {
		if p := g.player(id); p != nil {
			p.reset()
		}
	}

	if g.levelQuotaMet() {
		g.phase = PhaseLevelComplete
		return
	}
	g.phase = PhasePlaying
	g.emit("play resumed", "level", g.level)
	g.trySpawnObstacle()
}

// levelQuotaMet reports whether the solo level's obstacles are all passed.
func (g *Game) levelQuotaMet() bool {
	return g.mode == ModeSolo && g.passed >= g.cfg.Level(g.level).Obstacles
}

// checkLevel moves to level complete once the quota is met. Pending spawn
// attempts see the new phase and do nothing.
func (g *Game) checkLevel() {
	if g.phase != PhasePlaying || !g.levelQuotaMet() {
		return
	}
	g.phase = PhaseLevelComplete
	g.spawnHandle.Cancel()
	g.emit("level complete", "level", g.level, "score", g.score)
}

// nextLevel advances past a completed level, or wins after the last one.
func (g *Game) nextLevel() {
	if g.phase != PhaseLevelComplete {
		return
	}
	if g.level >= len(g.cfg.Levels) {
		g.victory()
		return
	}

	g.level++
	g.passed, g.spawned = 0, 0
	g.phase = PhasePlaying
	g.spawnHandle = g.clock.After(ms(g.cfg.Timing.LevelStartDelayMS), g.trySpawnObstacle)
	g.emit("level started", "level", g.level)
}

// endGame stops the run and drops every pending timer.
func (g *Game) endGame() {
	g.phase = PhaseGameOver
	g.clock.NewEpoch()
	g.lanes.Reset()
	if g.mode == ModeVersus {
		winner := "draw"
		if g.winner != 0 {
			winner = g.winner.String()
		}
		g.emit("game over", "mode", g.mode.String(), "winner", winner)
		return
	}
	g.emit("game over", "mode", g.mode.String(), "level", g.level, "score", g.score)
}

func (g *Game) victory() {
	g.phase = PhaseVictory
	g.clock.NewEpoch()
	g.lanes.Reset()
	g.emit("victory", "score", g.score)
}

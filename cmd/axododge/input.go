package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/axododge/audio"
	"github.com/lixenwraith/axododge/difficulty"
	"github.com/lixenwraith/axododge/match"
	"github.com/lixenwraith/axododge/render"
)

type action uint8

const (
	actNone action = iota
	actQuit
	actPause
	actRestart
	actMute
	actSkeleton
	actZen
	actHands
	actDifficulty
	actMove
	actCenter
)

// command is one decoded key press
type command struct {
	act    action
	preset difficulty.Preset
	dx, dy int
}

// difficultyKeys maps the number row to presets in menu order
var difficultyKeys = map[rune]difficulty.Preset{
	'1': difficulty.Easy,
	'2': difficulty.Medium,
	'3': difficulty.Hard,
	'4': difficulty.Progressive,
	'5': difficulty.Custom,
}

// keyCommand decodes a key press, actNone for unbound keys
func keyCommand(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command{act: actQuit}
	case tcell.KeyLeft:
		return command{act: actMove, dx: -1}
	case tcell.KeyRight:
		return command{act: actMove, dx: 1}
	case tcell.KeyUp:
		return command{act: actMove, dy: -1}
	case tcell.KeyDown:
		return command{act: actMove, dy: 1}
	case tcell.KeyEnter:
		return command{act: actRestart}
	case tcell.KeyRune:
	default:
		return command{}
	}

	r := ev.Rune()
	if p, ok := difficultyKeys[r]; ok {
		return command{act: actDifficulty, preset: p}
	}
	switch r {
	case 'q', 'Q':
		return command{act: actQuit}
	case 'p', 'P', ' ':
		return command{act: actPause}
	case 'r', 'R':
		return command{act: actRestart}
	case 'm', 'M':
		return command{act: actMute}
	case 's', 'S':
		return command{act: actSkeleton}
	case 'z', 'Z':
		return command{act: actZen}
	case 'h', 'H':
		return command{act: actHands}
	case 'c', 'C':
		return command{act: actCenter}
	case 'a', 'A':
		return command{act: actMove, dx: -1}
	case 'd', 'D':
		return command{act: actMove, dx: 1}
	case 'w', 'W':
		return command{act: actMove, dy: -1}
	case 'x', 'X':
		return command{act: actMove, dy: 1}
	}
	return command{}
}

// game binds key commands to the running collaborators
// apply must run on the loop goroutine
type game struct {
	director *match.Director
	avatar   *Avatar
	player   *audio.Player
	term     *render.Terminal
	zen      bool
}

func (g *game) apply(c command) {
	switch c.act {
	case actPause:
		g.director.TogglePause()
	case actRestart:
		g.director.Restart()
	case actMute:
		muted := g.player.ToggleMute()
		g.term.SetMuted(muted)
		log.Printf("[Input] muted=%t", muted)
	case actSkeleton:
		log.Printf("[Input] skeleton visible=%t", g.term.ToggleSkeleton())
	case actZen:
		g.zen = !g.zen
		g.director.SetZenMode(g.zen)
		log.Printf("[Input] zen=%t from next match", g.zen)
	case actDifficulty:
		g.director.SetDifficulty(c.preset)
		log.Printf("[Input] difficulty=%s from next match", c.preset)
		if g.director.Phase() != match.PhaseRunning {
			g.director.Restart()
		}
	case actHands:
		g.avatar.ToggleHands()
	case actMove:
		g.avatar.Nudge(c.dx, c.dy)
	case actCenter:
		g.avatar.Center()
	}
}

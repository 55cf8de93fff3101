package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type pulseVariant string

const (
	pulseAnimate   pulseVariant = "keypress-animate"
	pulseFromHover pulseVariant = "keypress-from-hover"
)

const (
	pulseAnimateDuration   = 200 * time.Millisecond
	pulseFromHoverDuration = 150 * time.Millisecond
)

const (
	glowEase     = 0.15
	glowFrame    = time.Second / 30
	glowFadeWait = 3 * time.Second
	glowRadius   = 8.0
)

// pulse is the transient highlight on an artist input after a keypress.
type pulse struct {
	variant pulseVariant
	tag     int
	active  bool
}

// triggerPulse restarts the keypress pulse for f.
//
// A focused or hovered field gets the shorter variant. Triggering again while a pulse is running replaces it.
func (m *Model) triggerPulse(f fieldID) tea.Cmd {
	if !m.opts.Animations {
		return nil
	}

	variant, d := pulseAnimate, pulseAnimateDuration
	if m.focus == focusTarget(f) || m.hover == f {
		variant, d = pulseFromHover, pulseFromHoverDuration
	}

	p := &m.pulses[f]
	p.active = false
	p.tag++
	p.variant = variant
	p.active = true
	return m.after(d, pulseDoneMsg{field: f, tag: p.tag})
}

func (m *Model) endPulse(msg pulseDoneMsg) {
	p := &m.pulses[msg.field]
	if p.tag == msg.tag {
		p.active = false
	}
}

// glow is a soft highlight that trails the pointer with eased motion.
type glow struct {
	x, y       float64
	targetX    float64
	targetY    float64
	active     bool
	running    bool
	tag        int
	moveSeq    int
	positioned bool
}

// move retargets the glow, starting the frame loop if it is idle and resetting the fade timer.
func (m *Model) moveGlow(x, y int) tea.Cmd {
	if !m.opts.CursorGlow || m.quitting {
		return nil
	}

	g := &m.glow
	g.targetX, g.targetY = float64(x), float64(y)
	if !g.positioned {
		g.x, g.y = g.targetX, g.targetY
		g.positioned = true
	}
	g.active = true
	g.moveSeq++

	cmds := []tea.Cmd{m.after(glowFadeWait, glowFadeMsg{seq: g.moveSeq})}
	if !g.running {
		g.running = true
		g.tag++
		cmds = append(cmds, m.after(glowFrame, glowFrameMsg{tag: g.tag}))
	}
	return tea.Batch(cmds...)
}

// stepGlow eases the glow toward its target and schedules the next frame while it is visible.
func (m *Model) stepGlow(msg glowFrameMsg) tea.Cmd {
	g := &m.glow
	if !g.running || msg.tag != g.tag {
		return nil
	}

	g.x += (g.targetX - g.x) * glowEase
	g.y += (g.targetY - g.y) * glowEase

	if !g.active {
		g.running = false
		return nil
	}
	return m.after(glowFrame, glowFrameMsg{tag: g.tag})
}

func (m *Model) fadeGlow(msg glowFadeMsg) {
	if msg.seq == m.glow.moveSeq {
		m.glow.active = false
	}
}

func (m *Model) hideGlow() {
	m.glow.active = false
}

// stopGlow cancels the frame loop.
func (m *Model) stopGlow() {
	m.glow.active = false
	m.glow.running = false
	m.glow.tag++
}

// strip renders the glow as a shaded line of the given width.
func (g glow) strip(width int) string {
	if width <= 0 {
		return ""
	}
	if !g.active {
		return strings.Repeat(" ", width)
	}

	var b strings.Builder
	for col := range width {
		d := math.Abs(float64(col) - g.x)
		switch {
		case d <= glowRadius/4:
			b.WriteString("▓")
		case d <= glowRadius/2:
			b.WriteString("▒")
		case d <= glowRadius:
			b.WriteString("░")
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}

// row reports the body line nearest the eased vertical position.
func (g glow) row() int {
	if !g.active {
		return -1
	}
	return int(math.Round(g.y))
}

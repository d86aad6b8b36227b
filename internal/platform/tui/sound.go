package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roshambo/internal/config"
)

const bell = "\a"

// CuePlayer plays semantic sound cues as terminal bells.
type CuePlayer struct {
	out    io.Writer
	sound  config.SoundConfig
	logger *log.Logger
}

// NewCuePlayer creates a player writing bells to out.
// A nil out or disabled sound config makes Play a no-op apart from logging.
func NewCuePlayer(out io.Writer, sound config.SoundConfig, logger *log.Logger) *CuePlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CuePlayer{out: out, sound: sound, logger: logger}
}

// Play rings the configured number of bells for each cue, in order.
func (p *CuePlayer) Play(cues []string) {
	if p == nil || len(cues) == 0 {
		return
	}
	p.logger.Debug("cues", "cues", cues)

	if p.out == nil {
		return
	}
	n := 0
	for _, c := range cues {
		n += p.sound.Bells(c)
	}
	if n == 0 {
		return
	}
	if _, err := io.WriteString(p.out, strings.Repeat(bell, n)); err != nil {
		p.logger.Warn("could not play sound", "error", err)
	}
}

// Enabled reports whether cues produce any output.
func (p *CuePlayer) Enabled() bool {
	return p != nil && p.out != nil && p.sound.Enabled
}

package system

import (
	"strconv"

	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
)

// TextWriter receives copied text, normally the system clipboard.
type TextWriter interface {
	WriteText(s string) error
}

// CopyScoreSystem copies the finished run's score on C.
type CopyScoreSystem struct {
	out TextWriter
	log *zap.Logger
}

func NewCopyScoreSystem(out TextWriter, log *zap.Logger) *CopyScoreSystem {
	return &CopyScoreSystem{out: out, log: log}
}

func (s *CopyScoreSystem) Update(w *ecs.World) {
	input, ok := ecs.FirstComponent(w, component.InputComponent.Kind())
	if !ok || !input.CopyPressed || s.out == nil {
		return
	}
	score, ok := ecs.FirstComponent(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	if err := s.out.WriteText(strconv.Itoa(score.Value)); err != nil {
		s.log.Warn("copy score failed", zap.Error(err))
		return
	}
	s.log.Info("final score copied", zap.Int("score", score.Value))
}

package system

import (
	"github.com/milk9111/ballgame/ecs"
	"github.com/milk9111/ballgame/ecs/component"
	"go.uber.org/zap"
)

// SoundPlayer plays a named clip.
type SoundPlayer interface {
	Play(name string) error
}

// AudioSystem serves every pending SoundRequest and removes the request
// entity. With a nil player requests are dropped silently.
type AudioSystem struct {
	player SoundPlayer
	log    *zap.Logger
}

func NewAudioSystem(player SoundPlayer, log *zap.Logger) *AudioSystem {
	return &AudioSystem{player: player, log: log}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(e ecs.Entity, req *component.SoundRequest) {
		if a.player != nil {
			if err := a.player.Play(req.Name); err != nil {
				a.log.Warn("play sound failed", zap.String("sound", req.Name), zap.Error(err))
			}
		}
		w.DestroyEntity(e)
	})
}

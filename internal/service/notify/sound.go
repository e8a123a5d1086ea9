// Package notify — короткий звуковой сигнал о завершении прогона,
// чтобы не переключаться на консоль ради результата.
package notify

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// SoundNotifier синтезирует тон сам, без звуковых файлов рядом с бинарём.
// Если аудиоустройство недоступно, деградирует до тишины с предупреждением.
type SoundNotifier struct {
	logger  *zap.SugaredLogger
	enabled bool

	once  sync.Once
	ready bool
}

func NewSoundNotifier(logger *zap.SugaredLogger, enabled bool) *SoundNotifier {
	return &SoundNotifier{logger: logger, enabled: enabled}
}

// Success — одиночный высокий тон: результат применён.
func (n *SoundNotifier) Success() { n.play(880) }

// Degraded — низкий тон: прогон завершён без применения.
func (n *SoundNotifier) Degraded() { n.play(392) }

func (n *SoundNotifier) play(freq int) {
	if n == nil || !n.enabled {
		return
	}
	n.once.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			n.logger.Warnw("Sound notifications disabled", "error", err)
			return
		}
		n.ready = true
	})
	if !n.ready {
		return
	}
	tone, err := generators.SinTone(sampleRate, freq)
	if err != nil {
		n.logger.Warnw("Failed to synthesize tone", "freq", freq, "error", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(120*time.Millisecond), tone))
}

// Package hotkey доставляет сигналы активации от глобальной комбинации клавиш.
package hotkey

import (
	"context"
	"time"
)

// Service минимальный интерфейс источника активаций.
type Service interface {
	Run(ctx context.Context) error
	Activations() <-chan time.Time
}

// Config параметры слушателя.
type Config struct {
	Chord Chord
}

// New создает сервис с платформенным слушателем (Windows).
func New(cfg Config) Service {
	return &listener{cfg: cfg, out: make(chan time.Time, 16)}
}

type listener struct {
	cfg Config
	out chan time.Time
}

func (l *listener) Activations() <-chan time.Time { return l.out }

// Run блокируется до отмены контекста.
func (l *listener) Run(ctx context.Context) error {
	pl, err := newPlatformListener(l.cfg.Chord)
	if err != nil {
		return err
	}
	defer close(l.out)
	pl.run(ctx, l.out)
	return context.Cause(ctx)
}

// Реализация под Windows в файле listener_windows.go
type platformListener interface {
	run(ctx context.Context, out chan<- time.Time)
}

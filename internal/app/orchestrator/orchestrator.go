// Package orchestrator гарантирует, что в каждый момент выполняется не более
// одного прогона коррекции, а новая активация вытесняет предыдущий.
package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonh-a/grammar-llama/internal/ai"
	"github.com/jonh-a/grammar-llama/internal/config"
	"github.com/jonh-a/grammar-llama/internal/service/clipboard"
	"github.com/jonh-a/grammar-llama/internal/service/notify"
	"github.com/jonh-a/grammar-llama/internal/service/report"
)

type Orchestrator struct {
	clip      clipboard.Gateway
	corrector ai.Corrector
	presenter *report.Presenter
	notifier  *notify.SoundNotifier
	logger    *zap.SugaredLogger

	teardownMaxWait   time.Duration
	correctionTimeout time.Duration

	mu      sync.Mutex // защищает current и gen
	gen     int64      // счётчик активаций; идентификаторы прогонов
	current *Run

	clipMu sync.Mutex // сериализует секции, трогающие буфер обмена
}

func New(cfg *config.Config, clip clipboard.Gateway, corrector ai.Corrector, presenter *report.Presenter, notifier *notify.SoundNotifier, logger *zap.SugaredLogger) *Orchestrator {
	teardown := cfg.TeardownMaxWait
	if teardown <= 0 {
		teardown = 5 * time.Second
	}
	return &Orchestrator{
		clip:              clip,
		corrector:         corrector,
		presenter:         presenter,
		notifier:          notifier,
		logger:            logger,
		teardownMaxWait:   teardown,
		correctionTimeout: cfg.CorrectionTimeout,
	}
}

// OnActivate вызывается из контекста источника хоткея и никогда не блокируется:
// отменяет незавершённый прогон (не дожидаясь его финализации) и безусловно
// запускает новый со следующим идентификатором.
func (o *Orchestrator) OnActivate() {
	o.mu.Lock()
	prev := o.current
	if prev != nil && !prev.State().Terminal() {
		prev.Cancel()
		o.logger.Infow("Superseding in-flight run", "run", prev.ID())
	}
	o.gen++
	ctx, cancel := context.WithCancel(context.Background())
	run := newRun(o.gen, cancel)
	o.current = run
	o.mu.Unlock()

	o.logger.Infow("Run started", "run", run.ID())
	go o.execute(ctx, run, prev)
}

// Shutdown отменяет текущий прогон; вызывается при завершении процесса.
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	cur := o.current
	o.mu.Unlock()
	if cur != nil {
		cur.Cancel()
	}
}

func (o *Orchestrator) execute(ctx context.Context, run *Run, prev *Run) {
	defer run.cancelFn()
	defer func() {
		// Паника одного прогона не должна ронять слушатель хоткея
		if p := recover(); p != nil {
			o.logger.Errorw("Run failed unexpectedly", "run", run.ID(), "panic", p)
			o.finish(run, StateCompleted)
		}
	}()
	o.finish(run, o.pipeline(ctx, run, prev))
}

// finish финализирует прогон и освобождает слот, если прогон всё ещё текущий.
// Слот current мутируют только OnActivate и этот метод, оба под o.mu.
func (o *Orchestrator) finish(run *Run, s State) {
	if !run.finish(s) {
		return
	}
	o.mu.Lock()
	if o.current == run {
		o.current = nil
	}
	o.mu.Unlock()
	o.logger.Infow("Run finished", "run", run.ID(), "state", s.String())
}

// pipeline выполняет тело прогона и возвращает его терминальное состояние.
func (o *Orchestrator) pipeline(ctx context.Context, run *Run, prev *Run) State {
	// Отменённый предшественник обязан финализироваться до того, как мы
	// тронем буфер обмена. Ждём ограниченно: если подтверждение не пришло,
	// продолжаем — флаг отмены и clipMu не дадут ему ничего применить.
	if prev != nil {
		t := time.NewTimer(o.teardownMaxWait)
		select {
		case <-prev.Done():
			t.Stop()
		case <-t.C:
			o.logger.Warnw("Previous run did not confirm teardown in time",
				"prev", prev.ID(), "waited", o.teardownMaxWait.String())
		case <-ctx.Done():
			t.Stop()
			o.presenter.Cancelled(run.ID())
			return StateCancelled
		}
	}

	run.setState(StateCapturing)
	o.clipMu.Lock()
	text, err := o.clip.CaptureSelection(ctx)
	o.clipMu.Unlock()
	if err != nil {
		// Захват не удался — работаем с пустым текстом, прогон продолжается
		o.presenter.CaptureFailed(err)
		text = ""
	}
	if run.Cancelled() {
		o.presenter.Cancelled(run.ID())
		return StateCancelled
	}
	run.original = text
	o.presenter.Captured(text)

	run.setState(StateAwaitingCorrection)
	o.presenter.Awaiting()
	corrCtx := ctx
	if o.correctionTimeout > 0 {
		var cancel context.CancelFunc
		corrCtx, cancel = context.WithTimeoutCause(ctx, o.correctionTimeout, errors.New("correction timeout"))
		defer cancel()
	}
	res, err := o.corrector.Correct(corrCtx, text)
	if run.Cancelled() || ctx.Err() != nil {
		// Ответ сервиса, даже пригодный, отброшен: прогон вытеснен
		o.presenter.Cancelled(run.ID())
		return StateCancelled
	}
	if err != nil || res == nil || strings.TrimSpace(res.CorrectedText) == "" {
		o.presenter.Degraded(err)
		o.notifier.Degraded()
		return StateCompleted
	}
	run.result = res
	o.presenter.Received(res.CorrectedText)
	o.presenter.Diff(text, res.CorrectedText)
	o.presenter.Summary(res)

	// Проверка вытеснения перед фазой применения
	if run.Cancelled() || !o.isCurrent(run) {
		o.presenter.Cancelled(run.ID())
		return StateCancelled
	}
	run.setState(StateApplying)
	o.clipMu.Lock()
	if run.Cancelled() { // повторная проверка уже под замком
		o.clipMu.Unlock()
		o.presenter.Cancelled(run.ID())
		return StateCancelled
	}
	err = o.clip.ApplyText(ctx, res.CorrectedText)
	o.clipMu.Unlock()
	if err != nil {
		// Ошибка вставки не роняет процесс: прогон всё равно завершён
		o.presenter.ApplyFailed(err)
		o.logger.Errorw("Apply failed", "run", run.ID(), "error", err)
		o.notifier.Degraded()
		return StateCompleted
	}
	o.notifier.Success()
	return StateCompleted
}

func (o *Orchestrator) isCurrent(run *Run) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current == run
}

package orchestrator

import (
	"context"
	"sync/atomic"

	"github.com/jonh-a/grammar-llama/internal/ai"
)

// State — этап жизненного цикла прогона конвейера.
type State int32

const (
	StateStarted State = iota + 1
	StateCapturing
	StateAwaitingCorrection
	StateApplying
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateStarted:
		return "started"
	case StateCapturing:
		return "capturing"
	case StateAwaitingCorrection:
		return "awaiting-correction"
	case StateApplying:
		return "applying"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal — состояние, из которого прогон уже не выйдет.
func (s State) Terminal() bool { return s == StateCompleted || s == StateCancelled }

// Run — один прогон конвейера "захват → коррекция → применение".
// Переходы состояний делает только собственная горутина прогона;
// извне допустим лишь Cancel.
type Run struct {
	id        int64
	cancelFn  context.CancelFunc
	cancelled atomic.Bool
	state     atomic.Int32
	done      chan struct{}

	original string
	result   *ai.Correction
}

func newRun(id int64, cancel context.CancelFunc) *Run {
	r := &Run{id: id, cancelFn: cancel, done: make(chan struct{})}
	r.state.Store(int32(StateStarted))
	return r
}

func (r *Run) ID() int64    { return r.id }
func (r *Run) State() State { return State(r.state.Load()) }

// Original — захваченный текст прогона. Читать только после Done.
func (r *Run) Original() string { return r.original }

// Result — пригодный результат коррекции или nil. Читать только после Done.
func (r *Run) Result() *ai.Correction { return r.result }

// Done закрывается при достижении терминального состояния.
func (r *Run) Done() <-chan struct{} { return r.done }

// Cancel помечает прогон отменённым и просит прервать операцию в полёте.
// Не блокируется и не ждёт финализации.
func (r *Run) Cancel() {
	if r.cancelled.CompareAndSwap(false, true) {
		r.cancelFn()
	}
}

func (r *Run) Cancelled() bool { return r.cancelled.Load() }

// setState не перезаписывает терминальное состояние.
func (r *Run) setState(s State) {
	for {
		cur := r.state.Load()
		if State(cur).Terminal() {
			return
		}
		if r.state.CompareAndSwap(cur, int32(s)) {
			return
		}
	}
}

// finish переводит прогон в терминальное состояние ровно один раз.
func (r *Run) finish(s State) bool {
	for {
		cur := r.state.Load()
		if State(cur).Terminal() {
			return false
		}
		if r.state.CompareAndSwap(cur, int32(s)) {
			close(r.done)
			return true
		}
	}
}

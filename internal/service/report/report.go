// Package report печатает прогресс, diff и сводку для пользователя.
// Формат строк повторяет консольный вывод оригинальной утилиты.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/jonh-a/grammar-llama/internal/ai"
	"github.com/jonh-a/grammar-llama/internal/service/diff"
)

// Presenter потокобезопасен: прогоны пишут из своих горутин.
type Presenter struct {
	mu    sync.Mutex
	w     io.Writer
	red   *color.Color
	green *color.Color
}

func New(w io.Writer) *Presenter {
	return &Presenter{
		w:     w,
		red:   color.New(color.FgRed),
		green: color.New(color.FgGreen),
	}
}

// Startup печатает баннер после успешных стартовых проверок.
func (p *Presenter) Startup(model, prompt string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, " + Startup tasks passed.")
	fmt.Fprintf(p.w, " + Using model: %s\n", model)
	fmt.Fprintf(p.w, " + Using prompt: %s\n\n", prompt)
}

func (p *Presenter) Captured(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "\n + Copied text:\n%s\n\n", text)
}

func (p *Presenter) Awaiting() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, " + Awaiting response from LLM...")
}

func (p *Presenter) Received(corrected string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, " + Received corrected content: \n%s\n\n", corrected)
}

// Diff печатает unified diff предложений: добавленные строки зелёным,
// удалённые красным, заголовки и контекст без цвета.
func (p *Presenter) Diff(original, corrected string) {
	text, err := diff.Unified(original, corrected)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		fmt.Fprintf(p.w, " - Failed to build diff: %v\n", err)
		return
	}
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			p.green.Fprintln(p.w, line)
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			p.red.Fprintln(p.w, line)
		default:
			fmt.Fprintln(p.w, line)
		}
	}
}

func (p *Presenter) Summary(c *ai.Correction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "\n + Original text score: %s\n", c.Strength)
	fmt.Fprintf(p.w, "\n + Original text tone: %s\n", c.Tone)
	fmt.Fprintf(p.w, " + Summary of corrections: %s\n\n", c.Summary)
}

func (p *Presenter) CaptureFailed(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, " - Failed to read selection (%v); proceeding with empty text.\n", err)
}

// Degraded — прогон завершён без применения результата.
func (p *Presenter) Degraded(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		fmt.Fprintf(p.w, " - Unable to get a usable correction: %v\n", err)
	}
	fmt.Fprintln(p.w, " - Correction failed; skipping paste.")
}

func (p *Presenter) Cancelled(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, " - Run %d superseded; discarding its result.\n", id)
}

func (p *Presenter) ApplyFailed(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, " - Failed to apply corrected text: %v\n", err)
}

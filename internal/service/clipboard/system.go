package clipboard

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	"github.com/micmonay/keybd_event"
)

// System — реальный шлюз: эмулирует copy/paste комбинации и читает/пишет
// системный буфер обмена.
type System struct {
	kb     keybd_event.KeyBonding
	settle time.Duration // пауза после комбинации, пока ОС донесёт событие
}

func NewSystem(settle time.Duration) (*System, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("init key bonding: %w", err)
	}
	if runtime.GOOS == "linux" {
		// uinput-устройству нужно время на регистрацию
		time.Sleep(2 * time.Second)
	}
	if settle <= 0 {
		settle = 100 * time.Millisecond
	}
	return &System{kb: kb, settle: settle}, nil
}

func (g *System) CaptureSelection(ctx context.Context) (string, error) {
	if err := g.pressChord(keybd_event.VK_C); err != nil {
		return "", fmt.Errorf("copy chord: %w", err)
	}
	if err := g.settleWait(ctx); err != nil {
		return "", err
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

func (g *System) ApplyText(ctx context.Context, text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	if err := g.pressChord(keybd_event.VK_V); err != nil {
		return fmt.Errorf("paste chord: %w", err)
	}
	return g.settleWait(ctx)
}

// pressChord нажимает Ctrl+<key> (Cmd на macOS).
func (g *System) pressChord(key int) error {
	g.kb.Clear()
	g.kb.SetKeys(key)
	if runtime.GOOS == "darwin" {
		g.kb.HasSuper(true)
	} else {
		g.kb.HasCTRL(true)
	}
	return g.kb.Launching()
}

func (g *System) settleWait(ctx context.Context) error {
	t := time.NewTimer(g.settle)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-t.C:
		return nil
	}
}

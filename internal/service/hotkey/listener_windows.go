//go:build windows

package hotkey

import (
	"context"
	"runtime"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"
)

// Обёртки для функций, которых нет в lxn/win
var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
)

type winImpl struct {
	chord Chord
}

func newPlatformListener(chord Chord) (platformListener, error) {
	return &winImpl{chord: chord}, nil
}

func (w *winImpl) run(ctx context.Context, out chan<- time.Time) {
	// UI/WinAPI должен жить в закрепленном системном потоке
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	className := syscall.StringToUTF16Ptr("CheckerHiddenWindowClass")

	// Регистрация класса окна
	var wc win.WNDCLASSEX
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.LpfnWndProc = syscall.NewCallback(func(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
		switch msg {
		case win.WM_HOTKEY:
			// Никогда не блокируем оконный поток: при переполнении — дроп
			select {
			case out <- time.Now():
			default:
			}
			return 0
		case win.WM_DESTROY:
			win.PostQuitMessage(0)
			return 0
		}
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	})
	wc.HInstance = win.GetModuleHandle(nil)
	wc.HCursor = win.LoadCursor(0, win.MAKEINTRESOURCE(uintptr(win.IDC_ARROW)))
	wc.LpszClassName = className
	if win.RegisterClassEx(&wc) == 0 {
		// возможно, уже зарегистрирован — пробуем продолжить
	}

	// Создаём скрытое окно
	hwnd := win.CreateWindowEx(
		0,
		className,
		syscall.StringToUTF16Ptr("CheckerHiddenWindow"),
		0,
		0, 0, 0, 0, // x, y, width, height
		0, // parent
		0, // menu
		wc.HInstance,
		nil,
	)
	if hwnd == 0 {
		return
	}

	// Регистрируем глобальный хоткей из конфигурации
	const hotkeyID = 1
	_ = registerHotKey(hwnd, hotkeyID, w.chord.Mods, w.chord.VK)

	// Параллельно следим за ctx и закрываем окно
	done := make(chan struct{}, 1)
	go func() {
		<-ctx.Done()
		win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
		done <- struct{}{}
	}()

	// Цикл сообщений до отмены контекста
	msg := new(win.MSG)
	for {
		r := win.GetMessage(msg, 0, 0, 0)
		if r == 0 || r == -1 { // WM_QUIT или ошибка
			break
		}
		win.TranslateMessage(msg)
		win.DispatchMessage(msg)
		select {
		case <-done:
			break
		default:
		}
	}

	// Очистка
	_ = unregisterHotKey(hwnd, hotkeyID)
	win.DestroyWindow(hwnd)
}

func registerHotKey(hwnd win.HWND, id int32, modifiers uint32, vk uint32) bool {
	if procRegisterHotKey.Find() != nil {
		return false
	}
	r, _, _ := procRegisterHotKey.Call(uintptr(hwnd), uintptr(id), uintptr(modifiers), uintptr(vk))
	return r != 0
}

func unregisterHotKey(hwnd win.HWND, id int32) bool {
	if procUnregisterHotKey.Find() != nil {
		return false
	}
	r, _, _ := procUnregisterHotKey.Call(uintptr(hwnd), uintptr(id))
	return r != 0
}

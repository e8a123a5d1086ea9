// Package clipboard — шлюз к системному буферу обмена и выделению.
package clipboard

import "context"

// Gateway захватывает текущее выделение и применяет исправленный текст.
// Обе операции могут ненадолго блокироваться на доставке событий ОС,
// поэтому принимают ctx. Вызывать конкурентно нельзя: сериализацию
// обеспечивает оркестратор.
type Gateway interface {
	// CaptureSelection копирует текущее выделение и возвращает его текст.
	CaptureSelection(ctx context.Context) (string, error)
	// ApplyText кладёт текст в буфер обмена и вставляет его в позицию курсора.
	ApplyText(ctx context.Context, text string) error
}

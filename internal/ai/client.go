package ai

import (
	"context"
	"errors"
)

// Ошибки сервиса коррекции. Unreachable и InvalidResponse — пер-прогонные,
// ModelMissing возможна только на старте.
var (
	ErrUnreachable     = errors.New("correction service unreachable")
	ErrInvalidResponse = errors.New("correction service returned invalid response")
	ErrModelMissing    = errors.New("correction model not found")
)

// Corrector интерфейс для взаимодействия с сервисом коррекции текста.
// Все реализации должны быть взаимозаменяемыми. Отмена ctx обязана
// прерывать ожидание ответа.
type Corrector interface {
	Correct(ctx context.Context, text string) (*Correction, error)
}

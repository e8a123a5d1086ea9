package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
)

// Схема ответа для structured output: зеркалит поля Correction.
// Оценку просим строкой — локальные модели надёжнее соблюдают enum из строк.
var correctionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"original_grammar_strength": map[string]any{
			"type": "string",
			"enum": []string{"1", "2", "3"},
		},
		"corrected_text":         map[string]any{"type": "string"},
		"summary_of_corrections": map[string]any{"type": "string"},
		"tone":                   map[string]any{"type": "string"},
	},
	"required": []string{
		"original_grammar_strength",
		"corrected_text",
		"summary_of_corrections",
		"tone",
	},
	"additionalProperties": false,
}

// OllamaCorrector ходит в OpenAI-совместимый endpoint (Ollama /v1).
type OllamaCorrector struct {
	client *openai.Client
	model  string
	prompt string
}

func NewOllamaCorrector(client *openai.Client, model, prompt string) *OllamaCorrector {
	return &OllamaCorrector{client: client, model: model, prompt: prompt}
}

// Correct отправляет инструкцию и текст пользователя, требуя строгий JSON.
// Отмена ctx прерывает HTTP-запрос — отдельного опроса флага не нужно.
func (c *OllamaCorrector) Correct(ctx context.Context, text string) (*Correction, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(c.prompt),
			openai.UserMessage(text),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "correction",
					Schema: correctionSchema,
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		// Отмену пробрасываем как есть: для оркестратора это не ошибка сервиса
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return nil, fmt.Errorf("%w: %s", ErrUnreachable, apierr.Error())
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrInvalidResponse)
	}
	return ParseCorrection(resp.Choices[0].Message.Content)
}

// CheckStartup проверяет доступность сервиса и наличие модели до приёма
// активаций. Аналог ps()+show(model) у Ollama.
func CheckStartup(ctx context.Context, client *openai.Client, model string) error {
	if _, err := client.Models.List(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if _, err := client.Models.Get(ctx, model); err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) && apierr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrModelMissing, model)
		}
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return nil
}

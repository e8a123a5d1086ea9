package config

import (
	"flag"
	"runtime"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultPrompt — инструкция для модели по умолчанию. Просим вернуть строго JSON;
// шкала качества исходной грамматики 1-3 (1 — почти нечитаемо, 3 — только мелкие правки).
const DefaultPrompt = "Correct the spelling, grammar, or phrasing issues in the following text. " +
	"Try to match the tone of the original message. " +
	"The response will be a JSON object that contains:\n " +
	" - original_grammar_strength: A ranking (1-3, 1 being poor/nearly incomprehensible, 2 needing moderate changes, and 3 needing only minor changes)\n" +
	" - corrected_text: The corrected text\n" +
	" - summary_of_corrections: A brief summary of the changes made\n" +
	" - tone: One word describing the tone of the message (friendly, casual, professional, sarcastic, etc.)" +
	"Use only JSON-safe characters in your response."

type Config struct {
	DebugMode   bool   `env:"DEBUG_MODE"`           // Режим дебага
	Model       string `env:"CHECKER_MODEL"`        // Имя модели у сервиса коррекции
	Prompt      string `env:"CHECKER_PROMPT"`       // Инструкция для модели
	Hotkey      string `env:"CHECKER_HOTKEY"`       // Комбинация клавиш в формате "<ctrl>+<alt>+a"
	BaseURL     string `env:"CHECKER_BASE_URL"`     // OpenAI-совместимый endpoint (Ollama: http://localhost:11434/v1)
	APIKey      string `env:"CHECKER_API_KEY"`      // Ключ API; Ollama значение не проверяет
	NotifySound bool   `env:"CHECKER_NOTIFY_SOUND"` // Короткий звуковой сигнал по завершении прогона

	// Тайминги конвейера
	ChordSettle       time.Duration `env:"CHECKER_CHORD_SETTLE"`       // Пауза после эмуляции copy/paste, пока ОС донесёт событие
	TeardownMaxWait   time.Duration `env:"CHECKER_TEARDOWN_MAX_WAIT"`  // Максимум ожидания финализации отменённого прогона
	CorrectionTimeout time.Duration `env:"CHECKER_CORRECTION_TIMEOUT"` // Таймаут одного запроса коррекции; 0 — без лимита
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode:         false,
		Model:             "gemma3",
		Prompt:            DefaultPrompt,
		Hotkey:            defaultHotkey(),
		BaseURL:           "http://localhost:11434/v1",
		APIKey:            "ollama",
		NotifySound:       true,
		ChordSettle:       100 * time.Millisecond,
		TeardownMaxWait:   5 * time.Second,
		CorrectionTimeout: 0,
	}
}

func defaultHotkey() string {
	if runtime.GOOS == "darwin" {
		return "<ctrl>+<cmd>+a"
	}
	return "<ctrl>+<alt>+a"
}

// NewConfig загружает конфигурацию приложения.
func NewConfig() *Config {
	_ = godotenv.Load()

	// Стартуем с дефолтов, затем перекрываем .env/окружением и флагами
	cfg := Defaults()
	_ = env.Parse(cfg)

	flag.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага для отображения доп. инфы")
	flag.StringVar(&cfg.Model, "model", cfg.Model, "имя модели сервиса коррекции")
	flag.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "инструкция для модели")
	flag.StringVar(&cfg.Hotkey, "hotkey", cfg.Hotkey, "глобальная комбинация клавиш, напр. <ctrl>+<alt>+a")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "OpenAI-совместимый endpoint сервиса коррекции")
	flag.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "ключ API (для Ollama любой)")
	flag.BoolVar(&cfg.NotifySound, "notify-sound", cfg.NotifySound, "звуковой сигнал по завершении прогона")
	flag.DurationVar(&cfg.ChordSettle, "chord-settle", cfg.ChordSettle, "пауза после эмуляции copy/paste, напр. 100ms")
	flag.DurationVar(&cfg.TeardownMaxWait, "teardown-max-wait", cfg.TeardownMaxWait, "максимум ожидания финализации отменённого прогона, напр. 5s")
	flag.DurationVar(&cfg.CorrectionTimeout, "correction-timeout", cfg.CorrectionTimeout, "таймаут одного запроса коррекции; 0 — без лимита")
	flag.Parse()

	return cfg
}

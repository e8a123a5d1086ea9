package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"github.com/jonh-a/grammar-llama/internal/ai"
	"github.com/jonh-a/grammar-llama/internal/app/orchestrator"
	"github.com/jonh-a/grammar-llama/internal/config"
	"github.com/jonh-a/grammar-llama/internal/service/clipboard"
	"github.com/jonh-a/grammar-llama/internal/service/hotkey"
	"github.com/jonh-a/grammar-llama/internal/service/notify"
	"github.com/jonh-a/grammar-llama/internal/service/report"
)

// Различимые коды выхода стартовых проверок
const (
	exitUnreachable  = 1
	exitModelMissing = 2
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	chord, err := hotkey.ParseChord(cfg.Hotkey)
	if err != nil {
		sugar.Fatalw("Invalid hotkey specification", "spec", cfg.Hotkey, "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := openai.NewClient(
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
	)

	// До приёма активаций: сервис доступен, модель существует
	if err := ai.CheckStartup(ctx, &client, cfg.Model); err != nil {
		if errors.Is(err, ai.ErrModelMissing) {
			fmt.Printf(" - Model %s not found.\n", cfg.Model)
			os.Exit(exitModelMissing)
		}
		fmt.Println(" - Failed to connect to correction service.")
		os.Exit(exitUnreachable)
	}

	presenter := report.New(os.Stdout)
	presenter.Startup(cfg.Model, cfg.Prompt)

	gateway, err := clipboard.NewSystem(cfg.ChordSettle)
	if err != nil {
		sugar.Fatalw("Failed to init clipboard gateway", "error", err)
	}

	corrector := ai.NewOllamaCorrector(&client, cfg.Model, cfg.Prompt)
	notifier := notify.NewSoundNotifier(sugar, cfg.NotifySound)
	orch := orchestrator.New(cfg, gateway, corrector, presenter, notifier, sugar)

	hk := hotkey.New(hotkey.Config{Chord: chord})
	sugar.Infow("Listening for hotkey", "chord", chord.String())

	// Мост из контекста источника хоткея в оркестратор
	go func() {
		for range hk.Activations() {
			orch.OnActivate()
		}
	}()

	err = hk.Run(ctx)
	orch.Shutdown()
	if err != nil && !errors.Is(err, context.Canceled) {
		sugar.Fatalw("Hotkey listener failed", "error", err)
	}
}

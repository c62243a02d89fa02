package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"taskClient/internal/api"
	"taskClient/internal/config"
	"taskClient/internal/logger"
	"taskClient/internal/notify"
	"taskClient/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Development)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout.Std())

	notifyDuration := cfg.Notifications.Duration.Std()
	notifier := notify.NewEmitter(notify.NewConsoleSink(), &notifyDuration)
	go notifier.Start(ctx, nil)

	taskStore := store.NewTaskStore(client, notifier, cfg.Tasks.PageSize)
	categoryStore := store.NewCategoryStore(client, notifier)

	logger.Info("Client: Инициализация состояния", zap.String("base_url", cfg.API.BaseURL))

	taskStore.Init(ctx)
	categoryStore.FetchCategories(ctx)

	if err := taskStore.Err(); err != nil {
		logger.Error("Client: Состояние загружено с ошибками", err)
	}

	if stats := taskStore.Statistics(); stats != nil {
		logger.Info("Client: Статистика задач",
			zap.Int("total", stats.TotalCount),
			zap.Int("completed", stats.CompletedCount),
			zap.Int("urgent", stats.UrgentCount),
			zap.Int("overdue", stats.OverdueCount),
		)
	}

	logger.Info("Client: Готово",
		zap.Int("tasks", len(taskStore.Tasks())),
		zap.Int("categories", len(categoryStore.Categories())),
	)
}

// Офлайн-сборка: скачать выгрузку, сконвертировать, записать rating.json.
// Запускается по расписанию снаружи (cron/Actions), любой сбой — exit 1.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"rating-service/internal/bitrix"
	"rating-service/internal/config"
	"rating-service/internal/rating/service"
	"rating-service/internal/workbook"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	client, err := bitrix.New(bitrix.Config{
		XLSXURL:    cfg.XLSXURL,
		WebhookURL: cfg.WebhookURL,
		FileID:     cfg.FileID,
		AuthHeader: cfg.AuthHeader,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("source not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	raw, err := client.FetchWorkbook(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("fetch workbook")
	}
	wb, err := workbook.Open(raw)
	if err != nil {
		logger.Fatal().Err(err).Msg("open workbook")
	}

	snap := service.Assemble(service.Convert(wb))

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("marshal snapshot")
	}
	if err := os.WriteFile(cfg.OutPath, out, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("write snapshot")
	}

	logger.Info().
		Str("path", cfg.OutPath).
		Int("rows", len(snap.All)).
		Msg("rating written")
}

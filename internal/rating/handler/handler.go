package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"rating-service/internal/bitrix"
	"rating-service/internal/middleware"
	"rating-service/internal/rating/service"
	"rating-service/internal/workbook"
)

// Rating: каждый запрос — свой независимый fetch+convert, без общего
// состояния; совпавшие по времени запросы дадут два скачивания, это
// осознанно приемлемо при минутном Cache-Control на ответе.
func Rating(client *bitrix.Client, cacheMaxAge int, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.With().Str("rid", middleware.GetRequestID(r)).Logger()

		raw, err := client.FetchWorkbook(r.Context())
		if err != nil {
			writeError(w, log, err)
			return
		}
		wb, err := workbook.Open(raw)
		if err != nil {
			writeError(w, log, err)
			return
		}

		operators, aup := service.Convert(wb)
		snap := service.Assemble(operators, aup)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", cacheMaxAge))
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("operators", len(snap.Operators)).
			Int("aup", len(snap.AUP)).
			Dur("elapsed", time.Since(start)).
			Msg("rating served")
	}
}

func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	log.Error().Err(err).Msg("rating failed")
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

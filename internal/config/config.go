package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string

	// Источник таблицы: либо прямая ссылка, либо вебхук + id файла на Диске.
	XLSXURL    string
	WebhookURL string
	FileID     string
	AuthHeader string

	OutPath     string // rating.json для офлайн-сборки
	CacheMaxAge int    // секунды, Cache-Control у прокси
}

func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8083"))
	maxAge, _ := strconv.Atoi(getenv("CACHE_MAX_AGE", "60"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/rating-service.log"),
		XLSXURL:      os.Getenv("BITRIX_XLSX_URL"),
		WebhookURL:   os.Getenv("BITRIX_WEBHOOK_URL"),
		FileID:       os.Getenv("BITRIX_FILE_ID"),
		AuthHeader:   os.Getenv("BITRIX_AUTH_HEADER"),
		OutPath:      getenv("OUT_PATH", "rating.json"),
		CacheMaxAge:  maxAge,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

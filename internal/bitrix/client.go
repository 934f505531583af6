// Package bitrix скачивает выгрузку рейтинга: либо по прямой (подписанной)
// ссылке, либо в два шага через вебхук Диска: disk.file.get → DOWNLOAD_URL.
package bitrix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoSource: источник не настроен. Это фатально для запуска/запроса,
// а не повод для ретрая.
var ErrNoSource = errors.New("bitrix: neither BITRIX_XLSX_URL nor BITRIX_WEBHOOK_URL+BITRIX_FILE_ID is set")

// StatusError — неуспешный ответ апстрима, со статусом для диагностики.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bitrix: %s: HTTP %d", e.Op, e.Status)
}

type Config struct {
	XLSXURL    string // прямая ссылка на файл
	WebhookURL string // вебхук вида https://portal.bitrix24.ru/rest/1/token
	FileID     string // id файла на Диске
	AuthHeader string // опциональный Authorization для скачивания
}

type Client struct {
	cfg Config
	hc  *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.XLSXURL == "" && (cfg.WebhookURL == "" || cfg.FileID == "") {
		return nil, ErrNoSource
	}
	return &Client{cfg: cfg, hc: &http.Client{Timeout: 30 * time.Second}}, nil
}

// FetchWorkbook возвращает сырые байты выгрузки. Шаги строго
// последовательны: metadata-запрос даёт URL для скачивания.
func (c *Client) FetchWorkbook(ctx context.Context) ([]byte, error) {
	src := c.cfg.XLSXURL
	if src == "" {
		var err error
		src, err = c.resolveDownloadURL(ctx)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	if c.cfg.AuthHeader != "" {
		req.Header.Set("Authorization", c.cfg.AuthHeader)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bitrix: download: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Op: "download", Status: res.StatusCode}
	}
	return io.ReadAll(res.Body)
}

func (c *Client) resolveDownloadURL(ctx context.Context) (string, error) {
	u := strings.TrimRight(c.cfg.WebhookURL, "/") + "/disk.file.get.json?id=" + url.QueryEscape(c.cfg.FileID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("bitrix: disk.file.get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &StatusError{Op: "disk.file.get", Status: res.StatusCode}
	}

	var body struct {
		Result struct {
			DownloadURL string `json:"DOWNLOAD_URL"`
		} `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("bitrix: disk.file.get: %w", err)
	}
	if body.Result.DownloadURL == "" {
		return "", errors.New("bitrix: disk.file.get: empty DOWNLOAD_URL")
	}
	return body.Result.DownloadURL, nil
}

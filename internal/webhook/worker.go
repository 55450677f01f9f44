package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/shenikar/traffiscan/internal/config"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	queue      Queue
	logger     *logrus.Logger
	cfg        *config.Config
	metrics    *observability.Metrics
	httpClient *http.Client
	wg         sync.WaitGroup
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(queue Queue, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) *WebhookWorker {
	return &WebhookWorker{
		queue:   queue,
		logger:  logger,
		cfg:     cfg,
		metrics: metrics,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди вебхуков
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping webhook worker.")
				return
			}

			payload, ok, err := w.queue.Pop(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop webhook event")
				// ждем перед повторной попыткой
				sleepCtx(ctx, w.cfg.WebhookBaseDelay)
				continue
			}
			if !ok {
				continue
			}

			var event WebhookEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal webhook event")
				w.metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
				continue
			}

			w.processWebhookEvent(ctx, event, payload)
		}
	}()
}

// Stop дожидается завершения горутины воркера после отмены контекста
func (w *WebhookWorker) Stop() {
	w.wg.Wait()
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event WebhookEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_type":         event.Type,
		"event_user_id":      event.UserID,
		"event_is_dangerous": event.IsDangerous,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		w.metrics.WebhookDeliveries.WithLabelValues("skipped").Inc()
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		retriesLeft := maxRetries - 1 - i

		status, err := w.deliver(ctx, rawPayload)
		switch {
		case err != nil:
			log.WithError(err).Warnf("Failed to send webhook. Retries left: %d", retriesLeft)
		case status >= 200 && status < 300:
			log.Info("Webhook delivered successfully.")
			w.metrics.WebhookDeliveries.WithLabelValues("delivered").Inc()
			return
		default:
			log.Warnf("Webhook delivery failed with status code %d. Retries left: %d", status, retriesLeft)
		}

		if retriesLeft == 0 {
			break
		}
		if !sleepCtx(ctx, delay) {
			break
		}
		delay *= 2 // экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook after %d attempts.", maxRetries)
	w.metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
}

func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// sleepCtx ждет d или отмены контекста; false - контекст отменен
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

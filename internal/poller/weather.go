// Package poller периодически обновляет погоду для наблюдаемой точки
// и рассылает вебхук при сильном влиянии на трафик.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/shenikar/traffiscan/internal/service"
	"github.com/shenikar/traffiscan/internal/webhook"
	"github.com/shenikar/traffiscan/pkg/geo"
	"github.com/sirupsen/logrus"
)

var levels = []models.Level{models.LevelLow, models.LevelMedium, models.LevelHigh}

type WeatherPoller struct {
	weather   service.WeatherService
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
	location  geo.Coordinate
	interval  time.Duration
	wg        sync.WaitGroup

	// уровень последнего успешного опроса, доступен только из горутины опроса
	lastImpact models.Level
}

func NewWeatherPoller(
	weather service.WeatherService,
	publisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	location geo.Coordinate,
	interval time.Duration,
) *WeatherPoller {
	return &WeatherPoller{
		weather:   weather,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
		location:  location,
		interval:  interval,
	}
}

// Start запускает опрос: первый сразу, далее с интервалом, до отмены ctx
func (p *WeatherPoller) Start(ctx context.Context) {
	p.logger.WithFields(logrus.Fields{
		"location": p.location.String(),
		"interval": p.interval.String(),
	}).Info("Starting weather poller...")

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.refresh(ctx)

		ticker := p.clock.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info("Stopping weather poller.")
				return
			case <-ticker.Chan():
				p.refresh(ctx)
			}
		}
	}()
}

// Stop дожидается завершения горутины опроса
func (p *WeatherPoller) Stop() {
	p.wg.Wait()
}

func (p *WeatherPoller) refresh(ctx context.Context) {
	snapshot, err := p.weather.Current(ctx, p.location)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.WithError(err).Warn("Weather poll failed")
		}
		return
	}

	for _, l := range levels {
		v := 0.0
		if l == snapshot.Impact {
			v = 1
		}
		p.metrics.WeatherImpact.WithLabelValues(string(l)).Set(v)
	}

	prev := p.lastImpact
	p.lastImpact = snapshot.Impact

	// оповещаем только при переходе в high, а не на каждом тике
	if snapshot.Impact != models.LevelHigh || prev == models.LevelHigh {
		return
	}

	log := p.logger.WithFields(logrus.Fields{
		"condition": snapshot.Condition,
		"impact":    snapshot.Impact,
	})
	if err := p.publisher.Publish(ctx, webhook.NewWeatherEvent(snapshot, p.clock.Now().UTC())); err != nil {
		log.WithError(err).Error("Failed to publish weather alert")
		return
	}
	log.Info("Weather alert published")
}

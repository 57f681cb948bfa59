package heat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"calorsos.xyz/heat-alert-service/pkg/common"
	"calorsos.xyz/heat-alert-service/pkg/models"
	"calorsos.xyz/heat-alert-service/pkg/observability"
	"calorsos.xyz/heat-alert-service/pkg/risk"
	"calorsos.xyz/heat-alert-service/pkg/weather"
)

// DefaultAlertInterval is how often the scheduler polls the weather provider.
// Earlier revisions of the service also shipped 30 minutes; 10 is the value
// this implementation standardizes on.
const DefaultAlertInterval = 10 * time.Minute

// ErrRunInFlight is returned by RunOnce when a previous run for the same
// scheduler is still executing. The trigger is skipped, not queued.
var ErrRunInFlight = errors.New("previous alert run still in flight")

// AlertScheduler composes fetch -> compute -> persist-alert -> fan-out into
// one recurring run. At most one run is in flight at a time.
type AlertScheduler struct {
	Heat         *Heat
	Source       weather.Source
	City         string
	// Fuente is the source label written on created alerts; empty means the
	// store default.
	Fuente       string
	Interval     time.Duration
	FetchTimeout time.Duration
	Clock        clockwork.Clock
	Metrics      *observability.Metrics

	running chan struct{}
}

func NewAlertScheduler(h *Heat, source weather.Source, city string, metrics *observability.Metrics) *AlertScheduler {
	return &AlertScheduler{
		Heat:         h,
		Source:       source,
		City:         city,
		Interval:     DefaultAlertInterval,
		FetchTimeout: weather.DefaultFetchTimeout,
		Clock:        clockwork.NewRealClock(),
		Metrics:      metrics,
		running:      make(chan struct{}, 1),
	}
}

// Start launches the recurring timer loop on its own goroutine. The loop
// stops when ctx is cancelled. Failures inside a run never escape the loop.
func (s *AlertScheduler) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *AlertScheduler) loop(ctx context.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameScheduler,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryScheduler),
	)
	logger.Info("Alert scheduler started",
		zap.String("city", s.City),
		zap.Duration("interval", s.Interval))

	ticker := s.Clock.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Alert scheduler stopping", zap.Error(ctx.Err()))
			return
		case <-ticker.Chan():
			if err := s.RunOnce(ctx); err != nil {
				logger.Warn("Scheduled alert run failed", zap.Error(err))
			}
		}
	}
}

// RunOnce executes one full cycle. It is the run boundary: any error is
// logged here and returned for the caller to inspect, but the process and
// future ticks are unaffected. An overlapping call returns ErrRunInFlight.
func (s *AlertScheduler) RunOnce(ctx context.Context) error {
	select {
	case s.running <- struct{}{}:
	default:
		s.Metrics.SchedulerSkips.Inc()
		return ErrRunInFlight
	}
	defer func() { <-s.running }()

	logger := common.GetLoggerWith(
		common.LoggerNameScheduler,
		zap.String(common.LoggerFieldHeatCategory, common.LoggerCategoryScheduler),
	)

	s.Metrics.SchedulerRuns.Inc()
	start := s.Clock.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, s.FetchTimeout)
	defer cancel()

	obs, err := s.Source.Current(fetchCtx, s.City)
	if err != nil {
		s.Metrics.SchedulerFailures.Inc()
		logger.Warn("Weather fetch failed, skipping run", zap.Error(err))
		return err
	}

	derived := risk.Compute(obs)

	alert, err := s.Heat.Alert.CreateAlert(&models.HeatAlert{
		Temperatura: obs.Temperatura,
		Humedad:     obs.Humedad,
		IndiceUV:    obs.IndiceUV,
		NivelRiesgo: derived.NivelAlerta,
		Fuente:      s.Fuente,
	})
	if err != nil {
		s.Metrics.SchedulerFailures.Inc()
		logger.Error("Alert persistence failed", zap.Error(err))
		return err
	}
	s.Metrics.AlertsCreated.Inc()

	if derived.NivelAlerta == models.RiskLevelNone {
		logger.Info("Risk below notification threshold",
			zap.Uint("alert_id", alert.ID),
			zap.Float64("nivel_calor", derived.NivelCalor))
		return nil
	}

	mensaje := fmt.Sprintf(
		"ALERTA DE CALOR %s - Temp: %.1f°C, UV: %.1f",
		strings.ToUpper(string(derived.NivelAlerta)), obs.Temperatura, obs.IndiceUV,
	)

	count, err := s.Heat.Notify.FanoutAlert(mensaje)
	if err != nil {
		// the alert row is kept; notifications are best-effort
		s.Metrics.SchedulerFailures.Inc()
		logger.Error("Notification fan-out failed",
			zap.Error(err),
			zap.Uint("alert_id", alert.ID))
		return err
	}
	s.Metrics.NotificationsCreated.Add(float64(count))
	s.Metrics.RunDuration.Observe(s.Clock.Since(start).Seconds())

	logger.Info("Alert run complete",
		zap.Uint("alert_id", alert.ID),
		zap.String("nivel_riesgo", string(derived.NivelAlerta)),
		zap.Int("notifications", count))

	return nil
}

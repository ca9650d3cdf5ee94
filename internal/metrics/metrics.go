// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"garden-defense/internal/event"
)

const namespace = "garden"

// Collector считает события симуляции в Prometheus-счётчиках. Регистр у
// каждого коллектора свой, поэтому несколько симуляций в одном процессе
// (например, в тестах) не конфликтуют.
type Collector struct {
	registry *prometheus.Registry

	ProjectilesFired     prometheus.Counter
	Impacts              prometheus.Counter
	Kills                prometheus.Counter
	DestinationRequests  *prometheus.CounterVec
	InvalidConfiguration prometheus.Counter
	SimTime              prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ProjectilesFired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectiles_fired_total",
			Help:      "Снарядов выпущено растениями.",
		}),
		Impacts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impacts_total",
			Help:      "Попаданий снарядов по живым зомби.",
		}),
		Kills: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "zombies_killed_total",
			Help:      "Зомби, перешедших в рэгдолл.",
		}),
		DestinationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "destination_requests_total",
			Help:      "Запросов новой точки назначения, по результату привязки к поверхности.",
		}, []string{"result"}),
		InvalidConfiguration: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_configurations_total",
			Help:      "Поведений, ставших инертными из-за конфигурации.",
		}),
		SimTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sim_time_seconds",
			Help:      "Текущее время симуляции.",
		}),
	}
	c.registry.MustRegister(c.ProjectilesFired, c.Impacts, c.Kills, c.DestinationRequests, c.InvalidConfiguration, c.SimTime)
	return c
}

// Subscribe подписывает коллектор на все события, которые он считает.
func (c *Collector) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c, event.ProjectileFired, event.ZombieHit, event.ZombieKilled,
		event.DestinationRequested, event.ConfigInvalid)
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		c.ProjectilesFired.Inc()
	case event.ZombieHit:
		c.Impacts.Inc()
	case event.ZombieKilled:
		c.Kills.Inc()
	case event.DestinationRequested:
		result := "snapped"
		if data, ok := e.Data.(event.DestinationData); ok && !data.Snapped {
			result = "missed"
		}
		c.DestinationRequests.WithLabelValues(result).Inc()
	case event.ConfigInvalid:
		c.InvalidConfiguration.Inc()
	}
}

// ObserveTime обновляет gauge времени симуляции.
func (c *Collector) ObserveTime(gameTime float64) {
	c.SimTime.Set(gameTime)
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler отдаёт метрики этого коллектора в формате Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector хранит счётчики Prometheus для конвейера назначения и эскалации
type Collector struct {
	registry          *prometheus.Registry
	incidentsReported prometheus.Counter
	assignmentsTotal  *prometheus.CounterVec
	escalationsTotal  *prometheus.CounterVec
	escalationTicks   prometheus.Counter
}

// NewCollector создает коллектор с собственным реестром метрик
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	incidentsReported := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch",
		Name:      "incidents_reported_total",
		Help:      "Total number of incidents reported.",
	})

	assignmentsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dispatch",
		Name:      "assignments_total",
		Help:      "Total number of assignment attempts by result.",
	}, []string{"result"})

	escalationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dispatch",
		Name:      "escalations_total",
		Help:      "Total number of escalation events triggered by rule.",
	}, []string{"rule"})

	escalationTicks := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch",
		Name:      "escalation_ticks_total",
		Help:      "Total number of escalation monitor ticks.",
	})

	for _, c := range []prometheus.Collector{incidentsReported, assignmentsTotal, escalationsTotal, escalationTicks} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &Collector{
		registry:          registry,
		incidentsReported: incidentsReported,
		assignmentsTotal:  assignmentsTotal,
		escalationsTotal:  escalationsTotal,
		escalationTicks:   escalationTicks,
	}, nil
}

// Handler возвращает HTTP-обработчик для эндпоинта /metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// IncIncidentReported увеличивает счётчик зарегистрированных инцидентов
func (c *Collector) IncIncidentReported() {
	if c == nil {
		return
	}
	c.incidentsReported.Inc()
}

// IncAssignment увеличивает счётчик попыток назначения с меткой результата
func (c *Collector) IncAssignment(result string) {
	if c == nil {
		return
	}
	c.assignmentsTotal.WithLabelValues(result).Inc()
}

// IncEscalation увеличивает счётчик срабатываний правила эскалации
func (c *Collector) IncEscalation(ruleID string) {
	if c == nil {
		return
	}
	c.escalationsTotal.WithLabelValues(ruleID).Inc()
}

// IncEscalationTick увеличивает счётчик проходов монитора эскалации
func (c *Collector) IncEscalationTick() {
	if c == nil {
		return
	}
	c.escalationTicks.Inc()
}

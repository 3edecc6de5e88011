package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик бота
type Metrics struct {
	UpdatesTotal       *prometheus.CounterVec
	BookingsCreated    prometheus.Counter
	BookingsAccepted   prometheus.Counter
	BookingsRejected   prometheus.Counter
	MalformedCallbacks prometheus.Counter
	SendErrors         prometheus.Counter

	serviceName string
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		UpdatesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bot_updates_total",
			Help:        "Total number of Telegram updates processed, by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bot_bookings_created_total",
			Help:        "Total number of booking requests submitted to the admin",
			ConstLabels: labels,
		}),
		BookingsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bot_bookings_accepted_total",
			Help:        "Total number of bookings accepted by the admin",
			ConstLabels: labels,
		}),
		BookingsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bot_bookings_rejected_total",
			Help:        "Total number of bookings rejected by the admin",
			ConstLabels: labels,
		}),
		MalformedCallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bot_malformed_callbacks_total",
			Help:        "Total number of callback queries that failed to parse",
			ConstLabels: labels,
		}),
		SendErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bot_send_errors_total",
			Help:        "Total number of failed outbound Telegram calls",
			ConstLabels: labels,
		}),
		serviceName: serviceName,
	}
}

// RegisterPendingGauge регистрирует gauge, читающий текущий размер
// реестра неразрешённых заявок
func (m *Metrics) RegisterPendingGauge(fn func() float64) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "bot_pending_bookings",
		Help:        "Number of booking requests awaiting an admin decision",
		ConstLabels: prometheus.Labels{"service": m.serviceName},
	}, fn)
}

// IncUpdate учитывает обработанное обновление указанного вида
func (m *Metrics) IncUpdate(kind string) { m.UpdatesTotal.WithLabelValues(kind).Inc() }

// IncBookingCreated учитывает отправленную на рассмотрение заявку
func (m *Metrics) IncBookingCreated() { m.BookingsCreated.Inc() }

// IncBookingAccepted учитывает принятую заявку
func (m *Metrics) IncBookingAccepted() { m.BookingsAccepted.Inc() }

// IncBookingRejected учитывает отклонённую заявку
func (m *Metrics) IncBookingRejected() { m.BookingsRejected.Inc() }

// IncMalformedCallback учитывает callback, не прошедший разбор
func (m *Metrics) IncMalformedCallback() { m.MalformedCallbacks.Inc() }

// IncSendError учитывает неудачный исходящий вызов Telegram
func (m *Metrics) IncSendError() { m.SendErrors.Inc() }

// Noop заглушка для работы с выключенными метриками
type Noop struct{}

func (Noop) IncUpdate(string)      {}
func (Noop) IncBookingCreated()    {}
func (Noop) IncBookingAccepted()   {}
func (Noop) IncBookingRejected()   {}
func (Noop) IncMalformedCallback() {}
func (Noop) IncSendError()         {}

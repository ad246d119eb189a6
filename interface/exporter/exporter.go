package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	METRIC_ERROR_COUNT        = "error_count"
	METRIC_TIP_COUNT          = "tip_count"
	METRIC_REFUND_COUNT       = "refund_count"
	METRIC_GOAL_REACHED_COUNT = "goal_reached_count"
	METRIC_WITHDRAW_COUNT     = "withdraw_count"
	METRIC_TOTAL_RECEIVED     = "total_received_grams"
)

var (
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
)

func Init() {

	// --- Static Metrics: the metrics which are not depended on running configuration

	// Create metric spaces
	counters = make(map[string]prometheus.Counter)
	gauges = make(map[string]prometheus.Gauge)

	// Register metrics
	counterHelp := map[string]string{
		METRIC_ERROR_COUNT:        "Counts the number of failed collaborator calls",
		METRIC_TIP_COUNT:          "Counts the number of accepted tips",
		METRIC_REFUND_COUNT:       "Counts the number of tips refused by a paused jar",
		METRIC_GOAL_REACHED_COUNT: "Counts the goal-reached announcements",
		METRIC_WITHDRAW_COUNT:     "Counts the owner withdrawals",
	}
	for name, help := range counterHelp {
		counter := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tipjar",
			Subsystem: "keeper",
			Name:      name,
			Help:      help,
		})
		prometheus.MustRegister(counter)
		counters[name] = counter
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tipjar",
		Subsystem: "keeper",
		Name:      METRIC_TOTAL_RECEIVED,
		Help:      "Running jar balance in nano tons",
	})
	prometheus.MustRegister(gauge)
	gauges[METRIC_TOTAL_RECEIVED] = gauge
}

func GetCounter(name string) prometheus.Counter {
	return counters[name]
}

func inc(name string) {
	if counter, exist := counters[name]; exist {
		counter.Inc()
	}
}

func IncErrorCount() {
	inc(METRIC_ERROR_COUNT)
}

func IncTipCount() {
	inc(METRIC_TIP_COUNT)
}

func IncRefundCount() {
	inc(METRIC_REFUND_COUNT)
}

func IncGoalReachedCount() {
	inc(METRIC_GOAL_REACHED_COUNT)
}

func IncWithdrawCount() {
	inc(METRIC_WITHDRAW_COUNT)
}

func SetTotalReceived(value uint64) {
	if gauge, exist := gauges[METRIC_TOTAL_RECEIVED]; exist {
		gauge.Set(float64(value))
	}
}

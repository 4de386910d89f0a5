package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Oracle 调用延迟（毫秒）
	OracleCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oracle_call_latency_ms",
			Help:    "Classification oracle call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"status"},
	)

	// 邮件处理计数
	EmailProcessedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_processed_count",
			Help: "Total number of emails processed",
		},
		[]string{"status"}, // status: success, failed
	)

	// 分类结果计数
	ClassificationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_classification_count",
			Help: "Total number of classification attempts",
		},
		[]string{"category"}, // category or "invalid"
	)

	// Dispatch 动作计数
	DispatchActionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_action_count",
			Help: "Total number of dispatch actions executed",
		},
		[]string{"action"}, // send_standard, send_complaint, urgent_ticket, support_ticket, feedback_record
	)

	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// 慢查询计数
	SlowQueryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_slow_query_count",
			Help: "Total number of slow database queries",
		},
		[]string{"sql"},
	)
)

// RecordOracleCallLatency 记录 Oracle 调用延迟
func RecordOracleCallLatency(status string, duration time.Duration) {
	OracleCallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

// IncrementEmailProcessed 增加邮件处理计数
func IncrementEmailProcessed(status string) {
	EmailProcessedCount.WithLabelValues(status).Inc()
}

// IncrementClassification 增加分类结果计数
func IncrementClassification(category string) {
	ClassificationCount.WithLabelValues(category).Inc()
}

// IncrementDispatchAction 增加 dispatch 动作计数
func IncrementDispatchAction(action string) {
	DispatchActionCount.WithLabelValues(action).Inc()
}

// RecordHTTPRequestDuration 记录 HTTP 请求延迟
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementSlowQuery 增加慢查询计数
func IncrementSlowQuery(sql string, duration time.Duration) {
	SlowQueryCount.WithLabelValues(sql).Inc()
}

package base

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// countMessageSent updates the outbound message and byte counters for
// the given transport name
func countMessageSent(transportName string, size int) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`exchange_messages_sent_total{transport=%q}`, transportName)).Inc()
	metrics.GetOrCreateCounter(fmt.Sprintf(`exchange_bytes_sent_total{transport=%q}`, transportName)).Add(size)
}

// countMessageReceived updates the inbound message and byte counters for
// the given transport name
func countMessageReceived(transportName string, size int) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`exchange_messages_received_total{transport=%q}`, transportName)).Inc()
	metrics.GetOrCreateCounter(fmt.Sprintf(`exchange_bytes_received_total{transport=%q}`, transportName)).Add(size)
}

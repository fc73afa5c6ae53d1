package client

import (
	"fmt"
	"hash/fnv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	purgesEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "denoise_client",
			Name:      "session_purges_enqueued_total",
			Help:      "Session purges accepted into the shard executor.",
		},
		[]string{"shard"},
	)

	purgesFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "denoise_client",
			Name:      "session_purges_failed_total",
			Help:      "Session purges that could not be enqueued or whose job failed.",
		},
	)
)

// shardLabel hashes a user id to a stable small-cardinality label (0-31) so
// per-user activity never explodes label cardinality.
func shardLabel(userID string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return fmt.Sprintf("%d", h.Sum32()%32)
}

package client

import (
	"strconv"
	"testing"
)

func TestShardLabel_DeterministicAndBounded(t *testing.T) {
	t.Parallel()
	ids := []string{"", "dGVzdEBleGFtcGxlLmNv", "Ym9iQGRlbm9pc2UuYXBw", "u1"}
	for _, id := range ids {
		got := shardLabel(id)
		if got != shardLabel(id) {
			t.Fatalf("shardLabel not deterministic for %q", id)
		}
		n, err := strconv.Atoi(got)
		if err != nil || n < 0 || n > 31 {
			t.Fatalf("shardLabel out of range for %q: %s", id, got)
		}
	}
}

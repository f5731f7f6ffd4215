package metrics_test

import (
	"sort"
	"testing"

	"easyrent/pkg/metrics"

	"github.com/stretchr/testify/require"
)

func TestBucketsSorted(t *testing.T) {
	for name, buckets := range map[string][]float64{
		"default": metrics.DefaultBuckets,
		"job":     metrics.JobBuckets,
	} {
		require.True(t, sort.Float64sAreSorted(buckets), name)
		require.Greater(t, buckets[0], 0.0, name)
	}
	require.Greater(t, metrics.JobBuckets[len(metrics.JobBuckets)-1], metrics.DefaultBuckets[len(metrics.DefaultBuckets)-1])
}

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyTableIsAcyclic(t *testing.T) {
	require.NoError(t, Validate())
}

func TestTopologicalOrderPlacesLeavesFirst(t *testing.T) {
	order, err := TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, len(dependencies))

	index := make(map[Component]int, len(order))
	for i, c := range order {
		index[c] = i
	}

	for c, deps := range dependencies {
		for _, dep := range deps {
			assert.Less(t, index[dep], index[c], "%s must come before %s", dep, c)
		}
	}

	assert.Equal(t, len(dependencies)-1, index[AggregationResult])
}

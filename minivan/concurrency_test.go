package minivan_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minivan/minivan"
	"github.com/katalvlaran/minivan/palette"
)

// TestBuild_Concurrent runs independent builds over one graph with a shared
// cached palette; every bundle must be identical.
func TestBuild_Concurrent(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {5, 6}, {6, 7}, {7, 5}}
	g := groupGraph(t, 8, 3, edges)

	hcl, err := palette.NewHCL(palette.DefaultSettings())
	require.NoError(t, err)
	cached, err := palette.NewCached(hcl, 4)
	require.NoError(t, err)

	const workers = 8
	out := make([][]byte, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := minivan.Build(g, nil, minivan.WithPalette(cached))
			if err != nil {
				errs[i] = err
				return
			}
			out[i], errs[i] = json.Marshal(b)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.JSONEq(t, string(out[0]), string(out[i]))
	}
}

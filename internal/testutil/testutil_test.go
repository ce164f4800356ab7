package testutil

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRunID_NeverExhausts(t *testing.T) {
	gen := NewFixedRunID("run-fixed")

	for i := 0; i < 3; i++ {
		assert.Equal(t, "run-fixed", gen.Generate())
	}
}

func TestFixedRunID_Default(t *testing.T) {
	assert.Equal(t, "run-default", NewFixedRunID("").Generate())
}

func TestFixedRunID_Concurrent(t *testing.T) {
	gen := NewFixedRunID("shared")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "shared", gen.Generate())
		}()
	}
	wg.Wait()
}

func TestWorkDir_Lifecycle(t *testing.T) {
	w, err := NewWorkDir("sqlmean-test-*")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(w.Path("temp_file.txt"), []byte("4.0"), 0o644))
	data, err := os.ReadFile(w.Path("temp_file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "4.0", string(data))

	require.NoError(t, w.Close())
	_, err = os.Stat(w.Dir())
	assert.True(t, os.IsNotExist(err))
}

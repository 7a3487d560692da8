package utils

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskPoolRunsAllTasks(t *testing.T) {
	t.Parallel()

	pool := NewTaskPool(3)
	defer pool.Close()

	var ran int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt32(&ran, 1)
		})
	}
	wg.Wait()

	require.Equal(t, int32(20), atomic.LoadInt32(&ran))
}

func TestTaskPoolCloseDrainsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	pool := NewTaskPool(2)

	var ran int32
	for i := 0; i < 5; i++ {
		pool.Submit(func() {
			atomic.AddInt32(&ran, 1)
		})
	}

	pool.Close()
	pool.Close()

	require.Equal(t, int32(5), atomic.LoadInt32(&ran))
}

func TestTaskPoolClampsWorkerCount(t *testing.T) {
	t.Parallel()

	pool := NewTaskPool(0)
	defer pool.Close()

	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
}

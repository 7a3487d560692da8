package utils

import "sync"

// TaskPool is a fixed-size worker pool. The enrichment layer runs its three
// directory lookups on it so outbound fan-out stays bounded per process.
type TaskPool struct {
	tasks chan func()
	wg    sync.WaitGroup

	closeOnce sync.Once
}

func NewTaskPool(workers int) *TaskPool {
	if workers < 1 {
		workers = 1
	}
	p := &TaskPool{tasks: make(chan func(), workers)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Submit blocks until a worker can take the task. Must not be called after
// Close.
func (p *TaskPool) Submit(task func()) {
	p.tasks <- task
}

// Close stops the workers after draining queued tasks.
func (p *TaskPool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}

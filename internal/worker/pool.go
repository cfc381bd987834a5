package worker

import (
	"sync"

	"github.com/vibecoder10/economy-fastforward/internal/config"
)

// Job is one unit of synthesis work. Runs are independent per video, so
// jobs carry no shared state.
type Job interface {
	Execute() error
	ID() string
}

// Pool runs synthesis jobs across a fixed set of workers. Each video's
// schedule is computed by exactly one worker; there is nothing to lock.
type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup
}

// NewPool starts workerCount workers consuming from a queue of queueSize.
func NewPool(workerCount, queueSize int) *Pool {
	p := &Pool{jobs: make(chan Job, queueSize)}
	for i := 1; i <= workerCount; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
	config.Log.WithField("workers", workerCount).Info("synthesis pool started")
	return p
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	for job := range p.jobs {
		log := config.Log.WithField("worker", id).WithField("job", job.ID())
		log.Info("job started")
		if err := job.Execute(); err != nil {
			log.WithError(err).Error("job failed")
			continue
		}
		log.Info("job finished")
	}
}

// Submit queues a job. It reports false when the queue is full rather than
// blocking the caller.
func (p *Pool) Submit(job Job) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		config.Log.WithField("job", job.ID()).Warn("job queue full, submission rejected")
		return false
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
	config.Log.Info("synthesis pool stopped")
}

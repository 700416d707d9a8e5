package digest

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs the digest job on a cron schedule. Runs are serialized:
// when a tick fires while the previous run is still in flight, the new run
// waits instead of overlapping. A panicking or failing run never takes the
// scheduler down.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// NewScheduler registers job under the given cron spec (standard five-field
// syntax, e.g. "0 * * * *" for the top of every hour).
func NewScheduler(job *Job, spec string, log zerolog.Logger) (*Scheduler, error) {
	cronLog := cronLogger{log: log}
	c := cron.New(cron.WithChain(
		cron.Recover(cronLog),
		cron.DelayIfStillRunning(cronLog),
	))

	_, err := c.AddFunc(spec, func() {
		if _, err := job.Run(); err != nil {
			log.Error().Err(err).Msg("digest run aborted")
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c, log: log}, nil
}

// Start begins firing ticks.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("patient digest job scheduled")
}

// Stop stops the schedule and returns a context that is done once any
// in-flight run has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// cronLogger adapts zerolog to the cron.Logger interface.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

// Package cleanup collects shutdown jobs (pool closes and the like)
// registered across the app and runs them when the server stops.
package cleanup

import "log/slog"

type Job struct {
	Name string
	F    func() error
}

var jobs []*Job

func Register(j *Job) {
	jobs = append(jobs, j)
}

// CleanUp runs the registered jobs in registration order. Failures are
// logged and do not stop the remaining jobs.
func CleanUp() {
	for _, j := range jobs {
		slog.Info("running cleanup job", slog.String("job", j.Name))
		if err := j.F(); err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.String("error", err.Error()))
		}
	}
}

package provisioning

import (
	"errors"
	"fmt"
	"time"
)

// Status classifies the outcome of one stage.
type Status string

const (
	// StatusOK means the stage completed successfully.
	StatusOK Status = "ok"
	// StatusFailed means the stage failed; later stages still ran.
	StatusFailed Status = "failed"
	// StatusSkipped means the stage declined to run, usually because a
	// prerequisite stage failed or the stage is disabled in config.
	StatusSkipped Status = "skipped"
)

// skipError signals that a stage chose not to run.
type skipError struct {
	reason string
}

func (e *skipError) Error() string {
	return e.reason
}

// Skip returns an error a stage can return from Run to be recorded as
// skipped rather than failed.
func Skip(reason string) error {
	return &skipError{reason: reason}
}

// SkipReason extracts the skip reason from a stage error. The second
// return is false when the error is a real failure.
func SkipReason(err error) (string, bool) {
	var se *skipError
	if errors.As(err, &se) {
		return se.reason, true
	}
	return "", false
}

// StageResult records the outcome of one stage.
type StageResult struct {
	Name     string
	Status   Status
	Duration time.Duration
	Err      error
}

// Report summarizes a full setup run.
type Report struct {
	Stages   []StageResult
	Duration time.Duration
}

// Failed returns the results of stages that failed.
func (r *Report) Failed() []StageResult {
	var failed []StageResult
	for _, s := range r.Stages {
		if s.Status == StatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Degraded reports whether any stage failed.
func (r *Report) Degraded() bool {
	return len(r.Failed()) > 0
}

// Err returns an error naming the failed stages, or nil when every
// stage succeeded or was skipped.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, s := range failed {
		names[i] = s.Name
	}
	return fmt.Errorf("%d of %d stages failed: %v", len(failed), len(r.Stages), names)
}

// RunStages executes all setup stages in order. A failed stage is
// recorded and the run continues with the next stage; only context
// cancellation aborts the remaining stages. Every stage appears in the
// returned report exactly once.
func RunStages(ctx *Context, stages []Stage) *Report {
	start := time.Now()
	report := &Report{}

	ctx.Observer.Printf("Starting setup with %d stages...", len(stages))

	for i, stage := range stages {
		label := fmt.Sprintf("%s (%d/%d)", stage.Name(), i+1, len(stages))

		if err := ctx.Err(); err != nil {
			report.Stages = append(report.Stages, StageResult{
				Name:   stage.Name(),
				Status: StatusSkipped,
				Err:    err,
			})
			LogStageSkipped(ctx.Observer, label, err.Error())
			continue
		}

		LogStageStart(ctx.Observer, label)
		stageStart := time.Now()
		err := stage.Run(ctx)
		elapsed := time.Since(stageStart)

		result := StageResult{
			Name:     stage.Name(),
			Duration: elapsed,
			Err:      err,
		}

		switch {
		case err == nil:
			result.Status = StatusOK
			LogStageComplete(ctx.Observer, label, elapsed)
		default:
			if reason, skipped := SkipReason(err); skipped {
				result.Status = StatusSkipped
				result.Err = nil
				LogStageSkipped(ctx.Observer, label, reason)
			} else {
				result.Status = StatusFailed
				LogStageFailed(ctx.Observer, label, err)
			}
		}

		report.Stages = append(report.Stages, result)
	}

	report.Duration = time.Since(start)
	ctx.Observer.Printf("Setup finished in %v", report.Duration.Round(time.Millisecond))
	return report
}

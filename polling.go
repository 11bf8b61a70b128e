package renamed

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Job tracks a long-running server-side operation such as a PDF split. It
// is created by the client when the operation is accepted and polled until
// a terminal state or the attempt budget runs out. A Job is not reusable
// across process restarts.
type Job struct {
	client       *client
	statusURL    string
	jobID        string
	pollInterval time.Duration
	maxAttempts  int
}

// JobOption customizes polling for a single job at creation.
type JobOption func(*Job)

// WithJobPollInterval overrides the wait between status polls for this job.
func WithJobPollInterval(interval time.Duration) JobOption {
	return func(j *Job) {
		if interval > 0 {
			j.pollInterval = interval
		}
	}
}

// WithJobMaxAttempts overrides how many status polls Wait performs before
// giving up.
func WithJobMaxAttempts(attempts int) JobOption {
	return func(j *Job) {
		if attempts > 0 {
			j.maxAttempts = attempts
		}
	}
}

func (c *client) newJob(statusURL, jobID string, opts ...JobOption) *Job {
	j := &Job{
		client:       c,
		statusURL:    statusURL,
		jobID:        jobID,
		pollInterval: c.pollInterval,
		maxAttempts:  c.maxPollAttempts,
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

// ID returns the job identifier reported by the service, if any.
func (j *Job) ID() string {
	return j.jobID
}

// StatusURL returns the address Wait and Status poll.
func (j *Job) StatusURL() string {
	return j.statusURL
}

// Status fetches the current job snapshot without advancing the polling
// loop.
func (j *Job) Status(ctx context.Context) (*JobStatusResponse, error) {
	if j.statusURL == "" {
		return nil, ErrEmptyStatusURL
	}

	var status JobStatusResponse
	req := j.client.restyClient.R().
		SetContext(ctx).
		SetResult(&status)

	if _, err := j.client.execute(req, http.MethodGet, j.statusURL); err != nil {
		return nil, err
	}

	return &status, nil
}

// Wait polls until the job completes, fails, or the attempt budget is
// exhausted. onProgress, when non-nil, receives every snapshot observed. A
// completed snapshot without a result does not finish the wait; the job is
// polled again.
func (j *Job) Wait(ctx context.Context, onProgress func(*JobStatusResponse)) (*PDFSplitResult, error) {
	attempts := 0

	for {
		status, err := j.Status(ctx)
		if err != nil {
			return nil, err
		}

		j.logStatus(status)
		if onProgress != nil {
			onProgress(status)
		}

		if status.Status == JobStatusCompleted && status.Result != nil {
			return status.Result, nil
		}

		if status.Status == JobStatusFailed {
			return nil, newJobError(status.Error, status.JobID)
		}

		attempts++
		if attempts >= j.maxAttempts {
			return nil, newJobError("Job polling timeout exceeded", j.jobID)
		}

		if err := j.waitNextPoll(ctx); err != nil {
			return nil, err
		}
	}
}

// waitNextPoll suspends until the next poll is due or the context ends.
func (j *Job) waitNextPoll(ctx context.Context) error {
	timer := time.NewTimer(j.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting for job %s cancelled: %w", j.displayID(), ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (j *Job) logStatus(status *JobStatusResponse) {
	if j.client.logger == nil {
		return
	}

	if status.Progress != nil {
		j.client.logger.Debug("job status",
			"job", displayJobID(status.JobID, j.jobID),
			"status", string(status.Status),
			"progress", *status.Progress,
		)
		return
	}

	j.client.logger.Debug("job status",
		"job", displayJobID(status.JobID, j.jobID),
		"status", string(status.Status),
	)
}

func (j *Job) displayID() string {
	return displayJobID(j.jobID, "")
}

// displayJobID truncates job identifiers for readable log lines.
func displayJobID(id, fallback string) string {
	if id == "" {
		id = fallback
	}
	if id == "" {
		return "unknown"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

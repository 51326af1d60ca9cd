package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobKindInApp = "in_app"
	MaxAttempts  = 5
	retryBase    = 30 * time.Second

	// ClaimLease hides a claimed job from other dispatchers while it is being published.
	ClaimLease = 2 * time.Minute
)

type Job struct {
	id        uuid.UUID
	kind      string
	topic     string
	payload   []byte
	runAt     time.Time
	attempts  int
	status    JobStatus
	lastError *string
	createdAt time.Time
	updatedAt time.Time
}

// NewJob queues m for delivery at now.
func NewJob(m Message, now time.Time) (*Job, error) {
	payload, err := m.Encode()
	if err != nil {
		return nil, ErrInvalidPayload
	}
	return &Job{
		id:        uuid.New(),
		kind:      JobKindInApp,
		topic:     m.Type.String(),
		payload:   payload,
		runAt:     now,
		status:    JobQueued,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructJob(id uuid.UUID, kind, topic string, payload []byte, runAt time.Time, attempts int, status JobStatus, lastError *string, createdAt, updatedAt time.Time) *Job {
	return &Job{
		id:        id,
		kind:      kind,
		topic:     topic,
		payload:   payload,
		runAt:     runAt,
		attempts:  attempts,
		status:    status,
		lastError: lastError,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (j *Job) Message() (Message, error) {
	return DecodeMessage(j.payload)
}

// Lease pushes run_at past the publish window. A dispatcher that dies before
// finishing leaves the job queued, so it is picked up again once the lease ends.
func (j *Job) Lease(now time.Time) error {
	if j.status != JobQueued {
		return ErrJobNotClaimable
	}
	j.runAt = now.Add(ClaimLease)
	j.updatedAt = now
	return nil
}

func (j *Job) MarkSent(now time.Time) error {
	if j.status != JobQueued {
		return ErrJobNotClaimable
	}
	j.attempts++
	j.status = JobSent
	j.lastError = nil
	j.updatedAt = now
	return nil
}

// MarkFailed records a delivery failure. The job is requeued with exponential
// backoff until MaxAttempts is reached, then parked as failed.
func (j *Job) MarkFailed(cause error, now time.Time) error {
	if j.status != JobQueued {
		return ErrJobNotClaimable
	}
	j.attempts++
	msg := cause.Error()
	j.lastError = &msg
	j.updatedAt = now
	if j.attempts >= MaxAttempts {
		j.status = JobFailed
		return nil
	}
	j.runAt = now.Add(retryBase << (j.attempts - 1))
	return nil
}

func (j *Job) ID() uuid.UUID        { return j.id }
func (j *Job) Kind() string         { return j.kind }
func (j *Job) Topic() string        { return j.topic }
func (j *Job) Payload() []byte      { return j.payload }
func (j *Job) RunAt() time.Time     { return j.runAt }
func (j *Job) Attempts() int        { return j.attempts }
func (j *Job) Status() JobStatus    { return j.status }
func (j *Job) LastError() *string   { return j.lastError }
func (j *Job) CreatedAt() time.Time { return j.createdAt }
func (j *Job) UpdatedAt() time.Time { return j.updatedAt }

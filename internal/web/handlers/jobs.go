package handlers

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kozaktomas/slideshow-builder/internal/catalog"
	"github.com/kozaktomas/slideshow-builder/internal/config"
	"github.com/kozaktomas/slideshow-builder/internal/engine"
)

// JobStatus represents the status of an async build job.
type JobStatus string

// JobStatus constants define the lifecycle states of an async job.
const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// BuildJob represents an async slideshow build.
type BuildJob struct {
	mu sync.RWMutex

	id          string
	status      JobStatus
	startedAt   time.Time
	completedAt *time.Time
	err         string
	result      *SlideshowResponse
}

// JobView is the JSON shape of a job at one moment in time.
type JobView struct {
	ID          string             `json:"id"`
	Status      JobStatus          `json:"status"`
	StartedAt   time.Time          `json:"started_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	Error       string             `json:"error,omitempty"`
	Result      *SlideshowResponse `json:"result,omitempty"`
}

// View returns a consistent snapshot of the job.
func (j *BuildJob) View() JobView {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return JobView{
		ID:          j.id,
		Status:      j.status,
		StartedAt:   j.startedAt,
		CompletedAt: j.completedAt,
		Error:       j.err,
		Result:      j.result,
	}
}

func (j *BuildJob) setRunning() {
	j.mu.Lock()
	j.status = JobStatusRunning
	j.mu.Unlock()
}

func (j *BuildJob) complete(result *SlideshowResponse) {
	now := time.Now()
	j.mu.Lock()
	j.status = JobStatusCompleted
	j.result = result
	j.completedAt = &now
	j.mu.Unlock()
}

func (j *BuildJob) fail(err error) {
	now := time.Now()
	j.mu.Lock()
	j.status = JobStatusFailed
	j.err = err.Error()
	j.completedAt = &now
	j.mu.Unlock()
}

// JobManager tracks async build jobs by id.
type JobManager struct {
	mu   sync.RWMutex
	jobs map[string]*BuildJob
}

// NewJobManager creates an empty job manager.
func NewJobManager() *JobManager {
	return &JobManager{
		jobs: make(map[string]*BuildJob),
	}
}

// Create registers a new pending job.
func (m *JobManager) Create() *BuildJob {
	job := &BuildJob{
		id:        uuid.New().String(),
		status:    JobStatusPending,
		startedAt: time.Now(),
	}
	m.mu.Lock()
	m.jobs[job.id] = job
	m.mu.Unlock()
	return job
}

// Get returns the job with the given id, or nil.
func (m *JobManager) Get(id string) *BuildJob {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.jobs[id]
}

// JobsHandler runs slideshow builds asynchronously.
type JobsHandler struct {
	config  *config.Config
	manager *JobManager
}

// NewJobsHandler creates a new jobs handler.
func NewJobsHandler(cfg *config.Config, manager *JobManager) *JobsHandler {
	return &JobsHandler{config: cfg, manager: manager}
}

// Create accepts a catalog in the request body and starts a build job.
// Responds 202 with the pending job; poll Get for the result.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ranking, sequencing, err := resolvePolicies(h.config, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The body must be read before the handler returns.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	job := h.manager.Create()
	go runBuildJob(job, body, ranking, sequencing)

	respondJSON(w, http.StatusAccepted, job.View())
}

// Get returns the current state of a job.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	job := h.manager.Get(chi.URLParam(r, "id"))
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}
	respondJSON(w, http.StatusOK, job.View())
}

func runBuildJob(job *BuildJob, body []byte, ranking, sequencing string) {
	job.setRunning()

	cat, err := catalog.Parse(bytes.NewReader(body))
	if err != nil {
		job.fail(err)
		return
	}

	eng, err := engine.New(engine.Options{Ranking: ranking, Sequencing: sequencing})
	if err != nil {
		job.fail(err)
		return
	}

	show, droppedID := eng.BuildShow(cat)
	job.complete(buildResponse(show, droppedID, ranking, sequencing))
}

package sink

// SinkError represents a persistence or rendering failure for a single
// artifact. The orchestrator logs it and continues the batch.
type SinkError struct {
	Artifact string `json:"artifact"`
	Stage    string `json:"stage"`
	Message  string `json:"message"`
	Cause    error  `json:"-"`
}

func (e *SinkError) Error() string {
	msg := e.Stage + " " + e.Artifact + ": " + e.Message
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *SinkError) Unwrap() error {
	return e.Cause
}

// Sink stages
const (
	StagePersist = "persist"
	StageRender  = "render"
	StageReport  = "report"
)

// NewSinkError creates a new sink error
func NewSinkError(stage, artifact, message string, cause error) *SinkError {
	return &SinkError{
		Artifact: artifact,
		Stage:    stage,
		Message:  message,
		Cause:    cause,
	}
}

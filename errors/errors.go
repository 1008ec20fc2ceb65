package errors

import "fmt"

var (
	ErrArtifactMissing   = fmt.Errorf("model artifact not found")
	ErrUnsupportedFormat = fmt.Errorf("unsupported model format")
	ErrInvalidArtifact   = fmt.Errorf("invalid model artifact")
	ErrDimensionMismatch = fmt.Errorf("feature dimension mismatch")
	ErrAgentNotFound     = fmt.Errorf("agent not found")
	ErrInvalidInput      = fmt.Errorf("invalid input")
)

var ErrWorkerPanic = fmt.Errorf("worker panic")

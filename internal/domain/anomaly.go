package domain

import (
	"context"
	"time"
)

// AnomalySeverity is the verdict of the anomaly pipeline for one request
type AnomalySeverity string

const (
	SeverityNone AnomalySeverity = "NONE"
	SeveritySoft AnomalySeverity = "SOFT"
	SeverityHard AnomalySeverity = "HARD"
)

func (s AnomalySeverity) rank() int {
	switch s {
	case SeveritySoft:
		return 1
	case SeverityHard:
		return 2
	}
	return 0
}

// Exceeds reports whether s is strictly more severe than other
func (s AnomalySeverity) Exceeds(other AnomalySeverity) bool {
	return s.rank() > other.rank()
}

// AnomalyEvaluation is produced by the external anomaly pipeline per request
type AnomalyEvaluation struct {
	Severity AnomalySeverity   `json:"severity"`
	Detail   string            `json:"detail,omitempty"`
	OpensAt  *time.Time        `json:"opensAt,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// AnomalyPipeline classifies remittance requests. Implemented by an external
// fraud/compliance detection service.
type AnomalyPipeline interface {
	Evaluate(ctx context.Context, req RemittanceRequest) (AnomalyEvaluation, error)
}

// AnomalyPipelineFunc adapts a function to the AnomalyPipeline interface
type AnomalyPipelineFunc func(ctx context.Context, req RemittanceRequest) (AnomalyEvaluation, error)

// Evaluate implements AnomalyPipeline
func (f AnomalyPipelineFunc) Evaluate(ctx context.Context, req RemittanceRequest) (AnomalyEvaluation, error) {
	return f(ctx, req)
}

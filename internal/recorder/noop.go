package recorder

import (
	"time"

	"BourseDash/internal/model"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ time.Time, _ []model.MarketRow, _ model.MarketSummary) error {
	return nil
}
func (n *NoopRecorder) Close() error { return nil }

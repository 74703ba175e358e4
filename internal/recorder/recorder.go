package recorder

import (
	"time"

	"BourseDash/internal/model"
)

// Recorder persists aggregation runs for later inspection.
type Recorder interface {
	RecordSnapshot(at time.Time, rows []model.MarketRow, summary model.MarketSummary) error
	Close() error
}

package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

// AnalyticsCounter selects which per-server counter to bump.
type AnalyticsCounter uint8

const (
	AnalyticsGameCreated AnalyticsCounter = iota
	AnalyticsGameFinished
	AnalyticsShotFired
)

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}

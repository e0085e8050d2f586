package interfaces

import (
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
)

type ReportStore interface {
	SaveReport(report *analytics.GradingReport) (uint, error)
}

package database

import (
	"gorm.io/gorm"
	"time"
)

type GradingReport struct {
	gorm.Model
	Ticker      string `gorm:"index;size:64"`
	Period      string `gorm:"size:32"`
	Interval    string `gorm:"size:16"`
	Rows        int
	GeneratedAt time.Time
	Comparisons []Comparison       `gorm:"foreignKey:GradingReportID"`
	Scores      []IndicatorScore   `gorm:"foreignKey:GradingReportID"`
	Summaries   []IndicatorSummary `gorm:"foreignKey:GradingReportID"`
}

// Comparison stores one Welch test. TStatistic and PValue are NULL when they are not finite;
// TStatisticInfinity keeps the sign (-1 or 1) of an infinite statistic, 0 otherwise.
type Comparison struct {
	gorm.Model
	GradingReportID    uint
	Key                string `gorm:"size:200"`
	FirstIndicator     string `gorm:"size:64"`
	FirstPolarity      string `gorm:"size:8"`
	FirstCount         int
	FirstMean          float64
	FirstStdDev        float64
	SecondIndicator    string `gorm:"size:64"`
	SecondPolarity     string `gorm:"size:8"`
	SecondCount        int
	SecondMean         float64
	SecondStdDev       float64
	TStatistic         *float64
	TStatisticInfinity int
	PValue             *float64
	Significance       int
	Grade              string `gorm:"size:8"`
	Winner             string `gorm:"size:64"`
}

type IndicatorScore struct {
	gorm.Model
	GradingReportID uint
	Position        int
	Indicator       string `gorm:"size:64"`
	Score           int
}

type IndicatorSummary struct {
	gorm.Model
	GradingReportID uint
	Indicator       string `gorm:"size:64"`
	Count           int
	MeanReturn      *float64
	StdReturn       *float64
	TotalReturn     float64
}

package services

import (
	"context"
	"fmt"
	"github.com/samber/lo"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"sort"
)

// MarketGrading is the grading outcome of one market in a scan.
type MarketGrading struct {
	Ticker        string
	Report        *analytics.GradingReport
	BestIndicator string
	BestScore     int
	Err           error
}

type MarketAnalysisService struct {
	gradingService *GradingService
}

func NewMarketAnalysisService(gradingService *GradingService) MarketAnalysisService {
	return MarketAnalysisService{gradingService: gradingService}
}

// AnalyzeMarkets grades every ticker with the same comparison settings. A failing market is kept
// in the output with its error so that one bad ticker does not stop the scan.
func (mas *MarketAnalysisService) AnalyzeMarkets(ctx context.Context, tickers []string, request Request) ([]MarketGrading, error) {
	var gradings []MarketGrading
	for _, ticker := range lo.Uniq(tickers) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		marketRequest := request
		marketRequest.Ticker = ticker

		grading := MarketGrading{Ticker: ticker}
		report, err := mas.gradingService.Run(ctx, marketRequest)
		if err != nil {
			helpers.Logger.Errorln(fmt.Sprintf("%s: %s", ticker, err.Error()))
			grading.Err = err
		} else {
			grading.Report = report
			grading.BestIndicator, grading.BestScore = bestIndicator(report)
		}
		gradings = append(gradings, grading)
	}
	return gradings, nil
}

// GetGradedMarketsByScore returns the successfully graded markets, best scores first.
func (mas *MarketAnalysisService) GetGradedMarketsByScore(gradings []MarketGrading) []MarketGrading {
	graded := lo.Filter(gradings, func(grading MarketGrading, _ int) bool {
		return grading.Err == nil
	})
	sort.SliceStable(graded, func(i, j int) bool {
		return graded[i].BestScore > graded[j].BestScore
	})
	return graded
}

func bestIndicator(report *analytics.GradingReport) (string, int) {
	if len(report.Ranking) == 0 || report.Ranking[0].Score == 0 {
		return "", 0
	}
	return report.Ranking[0].Indicator, report.Ranking[0].Score
}

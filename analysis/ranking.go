package analysis

import (
	"github.com/samber/lo"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"sort"
)

// Rank tallies decisive, significant wins per registry indicator. Every indicator appears in the
// output; equal scores keep registry order.
func Rank(registry *Registry, results map[string]analytics.ComparisonResult) []analytics.IndicatorScore {
	scores := make(map[string]int)
	for _, result := range results {
		if result.Significance == analytics.SignificanceNotSignificant || result.Winner == analytics.WinnerInconclusive {
			continue
		}
		if registry.Contains(result.Winner) {
			scores[result.Winner]++
		}
	}

	ranking := lo.Map(registry.Names(), func(name string, _ int) analytics.IndicatorScore {
		return analytics.IndicatorScore{Indicator: name, Score: scores[name]}
	})
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking
}

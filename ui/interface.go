package ui

import (
	"fmt"
	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"strings"
)

type UserInterface struct {
	report *analytics.GradingReport
}

func NewUserInterface(report *analytics.GradingReport) *UserInterface {
	return &UserInterface{report: report}
}

func (ui *UserInterface) Run() {
	if err := termui.Init(); err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("failed to initialize termui: %v", err))
		return
	}
	defer termui.Close()

	ui.UpdateUI()
	for e := range termui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			helpers.Logger.Infoln("Exited by keyboard interrupt")
			return
		case "<Resize>":
			termui.Clear()
			ui.UpdateUI()
		}
	}
}

func (ui *UserInterface) UpdateUI() {
	termui.Render(ui.widgets()...)
}

func (ui *UserInterface) widgets() []termui.Drawable {
	headerParagraph := widgets.NewParagraph()
	headerParagraph.BorderStyle.Fg = termui.ColorYellow
	headerParagraph.TitleStyle.Fg = termui.ColorYellow
	headerParagraph.Block.Title = "Strategy Grader " + ui.report.Ticker
	headerParagraph.Text = fmt.Sprintf("Period: %s  Interval: %s  Rows: %d\n", ui.report.Period, ui.report.Interval, ui.report.Rows)
	headerParagraph.Text += fmt.Sprintf("Generated: %s  [q to exit](fg:blue)", ui.report.GeneratedAt.Format("2006-01-02 15:04:05"))
	headerParagraph.SetRect(0, 0, 100, 4)

	comparisonsTable := widgets.NewTable()
	comparisonsTable.Title = "Comparisons"
	comparisonsTable.Rows = comparisonRows(ui.report)
	comparisonsTable.TextStyle = termui.NewStyle(termui.ColorWhite)
	comparisonsTable.RowSeparator = false
	comparisonsTable.SetRect(0, 4, 100, 6+len(comparisonsTable.Rows))

	rankingChart := widgets.NewBarChart()
	rankingChart.Title = "Ranking (significant wins)"
	for _, score := range ui.report.Ranking {
		rankingChart.Labels = append(rankingChart.Labels, score.Indicator)
		rankingChart.Data = append(rankingChart.Data, float64(score.Score))
	}
	rankingChart.BarWidth = 10
	rankingChart.BarColors = []termui.Color{termui.ColorGreen, termui.ColorCyan, termui.ColorMagenta}
	rankingChart.NumStyles = []termui.Style{termui.NewStyle(termui.ColorBlack)}
	top := 6 + len(comparisonsTable.Rows)
	rankingChart.SetRect(0, top, 40, top+10)

	summaryTable := widgets.NewTable()
	summaryTable.Title = "Summary"
	summaryTable.Rows = summaryRows(ui.report)
	summaryTable.RowSeparator = false
	summaryTable.SetRect(40, top, 100, top+10)

	return []termui.Drawable{headerParagraph, comparisonsTable, rankingChart, summaryTable}
}

func comparisonRows(report *analytics.GradingReport) [][]string {
	rows := [][]string{{"Comparison", "t", "p", "Grade", "Winner"}}
	if len(report.Comparisons) == 0 {
		return append(rows, []string{"insufficient signals", "", "", "", ""})
	}
	for _, key := range sortedKeys(report.Comparisons) {
		result := report.Comparisons[key]
		winner := result.Winner
		if result.IsDecisive() {
			winner = fmt.Sprintf("[%s](fg:green)", winner)
		}
		rows = append(rows, []string{
			key,
			fmt.Sprintf("%.4f", result.TStatistic),
			fmt.Sprintf("%.6f", result.PValue),
			fmt.Sprintf("%s %s", result.Significance.Grade(), strings.ToLower(result.Significance.ShortLabel())),
			winner,
		})
	}
	return rows
}

func summaryRows(report *analytics.GradingReport) [][]string {
	rows := [][]string{{"Indicator", "Count", "Mean", "Std", "Total"}}
	for _, indicator := range sortedKeys(report.Summary) {
		summary := report.Summary[indicator]
		rows = append(rows, []string{
			indicator,
			fmt.Sprintf("%d", summary.Count),
			summary.MeanReturn.String(),
			summary.StdReturn.String(),
			fmt.Sprintf("%.6f", summary.TotalReturn),
		})
	}
	return rows
}

package grader

import (
	"context"
	"fmt"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOStrategyGrader/analysis"
	"gitlab.com/aoterocom/AOStrategyGrader/config"
	"gitlab.com/aoterocom/AOStrategyGrader/database"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/interfaces"
	"gitlab.com/aoterocom/AOStrategyGrader/metrics"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"gitlab.com/aoterocom/AOStrategyGrader/providers/binance"
	"gitlab.com/aoterocom/AOStrategyGrader/providers/file"
	"gitlab.com/aoterocom/AOStrategyGrader/services"
	"gitlab.com/aoterocom/AOStrategyGrader/ui"
	"io"
	"net/http"
	"strings"
)

// Grader wires configuration, data providers and services behind the CLI commands.
type Grader struct {
	Config        config.Config
	Output        io.Writer
	metricsServer *http.Server
	dBService     *database.DBService
}

func NewGrader(output io.Writer) *Grader {
	return &Grader{Output: output}
}

// Setup loads conf.env, applies flag overrides and starts the logger and metrics endpoint.
func (g *Grader) Setup(c *cli.Context) error {
	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("error loading conf.env: %w", err)
	}
	g.Config = config.FromEnv()
	ApplyFlags(c, &g.Config)

	if err := helpers.InitLogger(g.Config.LogFile, g.Config.LogLevel); err != nil {
		return err
	}
	if g.Config.MetricsAddress != "" {
		g.metricsServer = metrics.Serve(g.Config.MetricsAddress)
		helpers.Logger.Infoln("metrics exposed on " + g.Config.MetricsAddress + "/metrics")
	}
	return nil
}

func (g *Grader) Teardown(c *cli.Context) error {
	if g.metricsServer != nil {
		metrics.Shutdown(g.metricsServer)
	}
	return nil
}

// ApplyFlags overrides configuration values with the flags explicitly set on the command line,
// including the flags of parent commands.
func ApplyFlags(c *cli.Context, conf *config.Config) {
	stringFlags := map[string]*string{
		"ticker":       &conf.Ticker,
		"period":       &conf.Period,
		"interval":     &conf.Interval,
		"provider":     &conf.Provider,
		"data":         &conf.DataPath,
		"registry":     &conf.RegistryFile,
		"log-file":     &conf.LogFile,
		"log-level":    &conf.LogLevel,
		"metrics-addr": &conf.MetricsAddress,
	}
	for name, target := range stringFlags {
		if c.IsSet(name) {
			*target = c.String(name)
		}
	}
	if c.IsSet("outliers") {
		conf.RemoveOutliers = c.Bool("outliers")
	}
	if c.IsSet("outlier-threshold") {
		conf.OutlierThreshold = c.Float64("outlier-threshold")
	}
	if c.IsSet("record") {
		conf.EnableDatabaseRecording = c.Bool("record")
	}
}

func (g *Grader) Compare(c *cli.Context) error {
	ApplyFlags(c, &g.Config)
	request, err := comparisonRequest(c)
	if err != nil {
		return err
	}
	gradingService, err := g.gradingService()
	if err != nil {
		return err
	}

	gradingRequest := services.Request{
		Ticker:     g.Config.Ticker,
		Period:     g.Config.Period,
		Interval:   g.Config.Interval,
		Comparison: request,
		Universe:   c.Bool("universe"),
	}

	var report *analytics.GradingReport
	if signalsFile := c.String("signals"); signalsFile != "" {
		table, err := file.LoadSignalTable(signalsFile)
		if err != nil {
			return err
		}
		report, err = gradingService.Grade(c.Context, gradingRequest, table)
		if err != nil {
			return err
		}
	} else {
		report, err = gradingService.Run(c.Context, gradingRequest)
		if err != nil {
			return err
		}
	}

	if result, ok := report.Comparisons[request.Key()]; ok && result.IsDecisive() {
		helpers.Logger.Notify(fmt.Sprintf("%s: %s wins %s (%s)", report.Ticker, result.Winner, request.Key(), result.Significance))
	}
	return g.render(c.String("output"), report)
}

func (g *Grader) Dashboard(c *cli.Context) error {
	ApplyFlags(c, &g.Config)
	request, err := comparisonRequest(c)
	if err != nil {
		return err
	}
	gradingService, err := g.gradingService()
	if err != nil {
		return err
	}
	report, err := gradingService.Run(c.Context, services.Request{
		Ticker:     g.Config.Ticker,
		Period:     g.Config.Period,
		Interval:   g.Config.Interval,
		Comparison: request,
		Universe:   true,
	})
	if err != nil {
		return err
	}
	ui.NewUserInterface(report).Run()
	return nil
}

func (g *Grader) Scan(c *cli.Context) error {
	ApplyFlags(c, &g.Config)
	request, err := comparisonRequest(c)
	if err != nil {
		return err
	}
	tickers := strings.Split(c.String("tickers"), ",")
	if c.String("tickers") == "" {
		return fmt.Errorf("no tickers to scan")
	}
	gradingService, err := g.gradingService()
	if err != nil {
		return err
	}

	marketAnalysisService := services.NewMarketAnalysisService(gradingService)
	gradings, err := marketAnalysisService.AnalyzeMarkets(c.Context, tickers, services.Request{
		Period:     g.Config.Period,
		Interval:   g.Config.Interval,
		Comparison: request,
		Universe:   c.Bool("universe"),
	})
	if err != nil {
		return err
	}
	for _, grading := range marketAnalysisService.GetGradedMarketsByScore(gradings) {
		best := grading.BestIndicator
		if best == "" {
			best = "no significant winner"
		}
		fmt.Fprintf(g.Output, "%-12s %s (%d)\n", grading.Ticker, best, grading.BestScore)
	}
	return nil
}

func (g *Grader) Legacy(c *cli.Context) error {
	ApplyFlags(c, &g.Config)
	registry, err := config.LoadRegistry(g.Config.RegistryFile)
	if err != nil {
		return err
	}
	column, err := registry.SignalColumn(c.String("indicator"))
	if err != nil {
		return err
	}

	var table *analytics.SignalTable
	if signalsFile := c.String("signals"); signalsFile != "" {
		table, err = file.LoadSignalTable(signalsFile)
	} else {
		table, err = g.fetchTable(c.Context, registry)
	}
	if err != nil {
		return err
	}

	if c.IsSet("first") || c.IsSet("second") {
		first, err := analysis.ParseBucket(c.String("first"))
		if err != nil {
			return err
		}
		second, err := analysis.ParseBucket(c.String("second"))
		if err != nil {
			return err
		}
		result, err := analysis.PerformPairwiseTTest(table, column, first, second)
		if err != nil {
			return err
		}
		return ui.RenderPairwise(g.Output, result)
	}

	pValues, err := analysis.PerformTTests(table, column)
	if err != nil {
		return err
	}
	return ui.RenderLegacy(g.Output, column, pValues, analysis.GradeStrategies(pValues))
}

func (g *Grader) History(c *cli.Context) error {
	ApplyFlags(c, &g.Config)
	dBService, err := g.database()
	if err != nil {
		return err
	}
	reports, err := dBService.GetReports(g.Config.Ticker, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintf(g.Output, "No reports stored for %s\n", g.Config.Ticker)
	}
	for _, report := range reports {
		if err := g.render(c.String("output"), report); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grader) fetchTable(ctx context.Context, registry *analysis.Registry) (*analytics.SignalTable, error) {
	provider, err := g.priceProvider()
	if err != nil {
		return nil, err
	}
	limit, err := config.CandleCount(g.Config.Period, g.Config.Interval)
	if err != nil {
		return nil, err
	}
	timeSeries, err := provider.GetSeries(ctx, g.Config.Ticker, g.Config.Interval, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", g.Config.Ticker, err)
	}
	return services.BuildSignalTable(timeSeries, registry)
}

func (g *Grader) gradingService() (*services.GradingService, error) {
	registry, err := config.LoadRegistry(g.Config.RegistryFile)
	if err != nil {
		return nil, err
	}
	var options []analysis.ComparatorOption
	if g.Config.RemoveOutliers {
		options = append(options, analysis.WithOutlierRemoval(g.Config.OutlierThreshold))
	}

	provider, err := g.priceProvider()
	if err != nil {
		return nil, err
	}
	gradingService := services.NewGradingService(provider, analysis.NewComparator(registry, options...))
	if g.Config.EnableDatabaseRecording {
		dBService, err := g.database()
		if err != nil {
			return nil, err
		}
		gradingService.SetReportStore(dBService)
	}
	return gradingService, nil
}

func (g *Grader) priceProvider() (interfaces.PriceProvider, error) {
	var provider interfaces.PriceProvider
	switch g.Config.Provider {
	case "binance":
		provider = binance.NewBinanceService(g.Config.BinanceAPIKey, g.Config.BinanceAPISecret)
	case "file":
		if g.Config.DataPath == "" {
			return nil, fmt.Errorf("provider file needs a data path")
		}
		provider = file.NewFileService(g.Config.DataPath)
	default:
		return nil, fmt.Errorf("%s is not a known provider", g.Config.Provider)
	}

	if g.Config.EnableDatabaseRecording {
		dBService, err := g.database()
		if err != nil {
			return nil, err
		}
		provider = database.NewCandleRecorder(provider, dBService)
	}
	return provider, nil
}

func (g *Grader) database() (*database.DBService, error) {
	if g.dBService != nil {
		return g.dBService, nil
	}
	dBService, err := database.NewDBService(g.Config.DatabaseHost, g.Config.DatabasePort, g.Config.DatabaseName,
		g.Config.DatabaseUser, g.Config.DatabasePassword)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	g.dBService = dBService
	return dBService, nil
}

func (g *Grader) render(format string, report *analytics.GradingReport) error {
	switch format {
	case "", "text":
		return ui.RenderText(g.Output, report)
	case "json":
		return ui.RenderJSON(g.Output, report)
	}
	return fmt.Errorf("%s is not a known output format (expected text or json)", format)
}

func comparisonRequest(c *cli.Context) (analysis.ComparisonRequest, error) {
	polarityA, err := analytics.ParsePolarity(c.String("signal1"))
	if err != nil {
		return analysis.ComparisonRequest{}, fmt.Errorf("%w: %s", analysis.ErrUnknownPolarity, err.Error())
	}
	polarityB, err := analytics.ParsePolarity(c.String("signal2"))
	if err != nil {
		return analysis.ComparisonRequest{}, fmt.Errorf("%w: %s", analysis.ErrUnknownPolarity, err.Error())
	}
	return analysis.ComparisonRequest{
		IndicatorA: c.String("indicator1"),
		PolarityA:  polarityA,
		IndicatorB: c.String("indicator2"),
		PolarityB:  polarityB,
	}, nil
}

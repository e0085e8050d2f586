package grader

import (
	"github.com/urfave/cli/v2"
	"io"
)

// GlobalFlags override the matching conf.env values when set.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "ticker", Aliases: []string{"t"}, Usage: "market symbol to grade"},
		&cli.StringFlag{Name: "period", Aliases: []string{"p"}, Usage: "history to grade: 1mo, 3mo, 6mo, 1y, 2y, 5y or a duration such as 180d"},
		&cli.StringFlag{Name: "interval", Aliases: []string{"i"}, Usage: "candle interval, e.g. 1h, 4h, 1d"},
		&cli.StringFlag{Name: "provider", Usage: "price provider: binance or file"},
		&cli.StringFlag{Name: "data", Usage: "price file or directory for the file provider"},
		&cli.StringFlag{Name: "registry", Usage: "YAML file with the indicator universe"},
		&cli.StringFlag{Name: "log-file", Usage: "log file, - for stderr"},
		&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error"},
		&cli.StringFlag{Name: "metrics-addr", Usage: "expose Prometheus metrics on this address"},
		&cli.BoolFlag{Name: "record", Usage: "store reports and candles in the database"},
	}
}

func comparisonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "indicator1", Value: "RSI", Usage: "first indicator"},
		&cli.StringFlag{Name: "signal1", Value: "All", Usage: "first signal type: All, Buy or Sell"},
		&cli.StringFlag{Name: "indicator2", Value: "MACD", Usage: "second indicator"},
		&cli.StringFlag{Name: "signal2", Value: "All", Usage: "second signal type: All, Buy or Sell"},
		&cli.BoolFlag{Name: "universe", Usage: "also compare every pair of registry indicators"},
		&cli.BoolFlag{Name: "outliers", Usage: "drop returns beyond the z-score threshold before testing"},
		&cli.Float64Flag{Name: "outlier-threshold", Usage: "z-score threshold for --outliers"},
	}
}

func (g *Grader) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "compare",
			Usage: "compare the returns of two indicator signal types with a Welch t-test",
			Flags: append(comparisonFlags(),
				&cli.StringFlag{Name: "signals", Usage: "CSV with precomputed signal columns instead of fetching prices"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "text", Usage: "text or json"},
			),
			Action: g.Compare,
		},
		{
			Name:   "dashboard",
			Usage:  "grade every indicator pair and show the results in a terminal dashboard",
			Flags:  comparisonFlags(),
			Action: g.Dashboard,
		},
		{
			Name:  "scan",
			Usage: "grade several markets and list the best indicator of each",
			Flags: append(comparisonFlags(),
				&cli.StringFlag{Name: "tickers", Usage: "comma separated market symbols"},
			),
			Action: g.Scan,
		},
		{
			Name:  "legacy",
			Usage: "compare the Buy, Sell and Hold returns of a single indicator",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "indicator", Value: "RSI", Usage: "indicator whose signal column is tested"},
				&cli.StringFlag{Name: "first", Usage: "first bucket (Buy, Sell or Hold) for a single pairwise test"},
				&cli.StringFlag{Name: "second", Usage: "second bucket (Buy, Sell or Hold) for a single pairwise test"},
				&cli.StringFlag{Name: "signals", Usage: "CSV with precomputed signal columns instead of fetching prices"},
			},
			Action: g.Legacy,
		},
		{
			Name:  "history",
			Usage: "print the stored reports of a ticker",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "limit", Value: 5, Usage: "number of reports"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "text", Usage: "text or json"},
			},
			Action: g.History,
		},
	}
}

func NewApp(output io.Writer) *cli.App {
	strategyGrader := NewGrader(output)
	return &cli.App{
		Name:     "grader",
		Usage:    "grade trading indicators by the statistical significance of their signal returns",
		Flags:    GlobalFlags(),
		Before:   strategyGrader.Setup,
		After:    strategyGrader.Teardown,
		Commands: strategyGrader.Commands(),
		Writer:   output,
	}
}

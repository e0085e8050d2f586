package config

import (
	"github.com/joho/godotenv"
	"os"
	"path/filepath"
	"strconv"
)

const (
	DefaultConfFile = "conf.env"
	DefaultTicker   = "BTCUSDT"
	DefaultPeriod   = "6mo"
	DefaultInterval = "1d"
	DefaultProvider = "binance"

	DefaultOutlierThreshold = 3.0
)

type Config struct {
	Ticker       string
	Period       string
	Interval     string
	Provider     string
	DataPath     string
	RegistryFile string

	BinanceAPIKey    string
	BinanceAPISecret string

	LogFile  string
	LogLevel string

	RemoveOutliers   bool
	OutlierThreshold float64
	MetricsAddress   string

	EnableDatabaseRecording bool
	DatabaseName            string
	DatabaseHost            string
	DatabasePort            string
	DatabaseUser            string
	DatabasePassword        string
}

// LoadEnv loads the env file into the process environment. CONF_FILE overrides the default
// conf.env next to the working directory. A missing file is not an error.
func LoadEnv() error {
	path := os.Getenv("CONF_FILE")
	if path == "" {
		cwd, _ := os.Getwd()
		path = filepath.Join(cwd, DefaultConfFile)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func FromEnv() Config {
	config := Config{
		Ticker:       getEnv("ticker", DefaultTicker),
		Period:       getEnv("period", DefaultPeriod),
		Interval:     getEnv("interval", DefaultInterval),
		Provider:     getEnv("provider", DefaultProvider),
		DataPath:     os.Getenv("dataPath"),
		RegistryFile: os.Getenv("registryFile"),

		BinanceAPIKey:    os.Getenv("binanceAPIKey"),
		BinanceAPISecret: os.Getenv("binanceAPISecret"),

		LogFile:  getEnv("logFile", "grader.log"),
		LogLevel: getEnv("logLevel", "info"),

		MetricsAddress: os.Getenv("metricsAddress"),

		DatabaseName:     getEnv("databaseName", "AOStrategyGrader"),
		DatabaseHost:     getEnv("databaseHost", "127.0.0.1"),
		DatabasePort:     getEnv("databasePort", "3306"),
		DatabaseUser:     os.Getenv("databaseUser"),
		DatabasePassword: os.Getenv("databasePassword"),
	}
	config.RemoveOutliers, _ = strconv.ParseBool(os.Getenv("removeOutliers"))
	config.OutlierThreshold = DefaultOutlierThreshold
	if threshold, err := strconv.ParseFloat(os.Getenv("outlierThreshold"), 64); err == nil && threshold > 0 {
		config.OutlierThreshold = threshold
	}
	config.EnableDatabaseRecording, _ = strconv.ParseBool(os.Getenv("enableDatabaseRecording"))
	return config
}

func getEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

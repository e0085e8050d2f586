package database

import (
	"fmt"
	"github.com/sdcoffey/techan"
	database "gitlab.com/aoterocom/AOStrategyGrader/database/models"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.GradingReport{}, &database.Comparison{}, &database.IndicatorScore{},
		&database.IndicatorSummary{}, &database.Candle{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

func (dbs *DBService) SaveReport(report *analytics.GradingReport) (uint, error) {
	record := NewReportRecord(report)
	if err := dbs.DB.Create(&record).Error; err != nil {
		return 0, fmt.Errorf("saving %s report: %w", report.Ticker, err)
	}
	return record.ID, nil
}

// GetReports returns the latest reports of ticker, newest first. An empty ticker matches every ticker.
func (dbs *DBService) GetReports(ticker string, limit int) ([]*analytics.GradingReport, error) {
	query := dbs.DB.Preload("Comparisons").Preload("Scores").Preload("Summaries").Order("generated_at DESC")
	if ticker != "" {
		query = query.Where("ticker = ?", ticker)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []database.GradingReport
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	reports := make([]*analytics.GradingReport, 0, len(records))
	for _, record := range records {
		reports = append(reports, ToReport(record))
	}
	return reports, nil
}

func (dbs *DBService) AddOrUpdateCandle(candle techan.Candle, symbol string) error {
	dbCandle := NewCandleRecord(candle, symbol)

	// Update columns to new value on conflict
	return dbs.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "period"}},
		DoUpdates: clause.AssignmentColumns([]string{"open_price", "close_price", "max_price", "min_price", "volume", "trade_count"}),
	}).Create(&dbCandle).Error
}

func NewCandleRecord(candle techan.Candle, symbol string) database.Candle {
	return database.Candle{
		Symbol:     symbol,
		Period:     candle.Period.Start.UTC().String() + " " + candle.Period.End.UTC().String(),
		OpenPrice:  candle.OpenPrice,
		ClosePrice: candle.ClosePrice,
		MaxPrice:   candle.MaxPrice,
		MinPrice:   candle.MinPrice,
		Volume:     candle.Volume,
		TradeCount: candle.TradeCount,
	}
}

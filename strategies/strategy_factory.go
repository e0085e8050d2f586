package strategies

import (
	"fmt"
	"gitlab.com/aoterocom/AOStrategyGrader/interfaces"
)

func StrategyFactory(indicatorName string) (interfaces.SignalStrategy, error) {

	switch indicatorName {
	case "RSI":
		rsiStrategy := NewRSIStrategy()
		return interfaces.SignalStrategy(&rsiStrategy), nil
	case "MACD":
		macdStrategy := NewMACDStrategy()
		return interfaces.SignalStrategy(&macdStrategy), nil
	case "Bollinger":
		bollingerStrategy := NewBollingerStrategy()
		return interfaces.SignalStrategy(&bollingerStrategy), nil
	case "StochRSI":
		stochRSIStrategy := NewStochRSIStrategy()
		return interfaces.SignalStrategy(&stochRSIStrategy), nil
	default:
		return nil, fmt.Errorf("%s is not a known strategy", indicatorName)
	}

}

// StrategiesFor builds one signal generator per indicator name.
func StrategiesFor(indicatorNames []string) ([]interfaces.SignalStrategy, error) {
	var signalStrategies []interfaces.SignalStrategy
	for _, name := range indicatorNames {
		strategy, err := StrategyFactory(name)
		if err != nil {
			return nil, err
		}
		signalStrategies = append(signalStrategies, strategy)
	}
	return signalStrategies, nil
}

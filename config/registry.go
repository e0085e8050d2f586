package config

import (
	"fmt"
	"gitlab.com/aoterocom/AOStrategyGrader/analysis"
	"gopkg.in/yaml.v3"
	"os"
)

type registryFile struct {
	Indicators []analysis.Indicator `yaml:"indicators"`
}

// LoadRegistry reads the indicator universe from a YAML file. An empty path yields the
// default RSI, MACD and Bollinger registry.
func LoadRegistry(path string) (*analysis.Registry, error) {
	if path == "" {
		return analysis.DefaultRegistry(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRegistry(data)
}

func ParseRegistry(data []byte) (*analysis.Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding registry: %w", err)
	}
	return analysis.NewRegistry(file.Indicators...)
}

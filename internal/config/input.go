package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	hjson "github.com/hjson/hjson-go/v4"
	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFile is returned for configuration files with an unknown extension.
var ErrUnsupportedFile = errors.New("unsupported configuration file type")

// Annual returns must stay above minReturn percent.
var minReturn = decimal.NewFromInt(-100)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, JSON or HJSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// Parse decodes a configuration of the given type (".yaml", ".yml", ".json"
// or ".hjson"), fills defaults and validates it.
func (ip *InputParser) Parse(data []byte, ext string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".hjson":
		// hjson decodes into generic values; round-trip through JSON so
		// amounts go through the same lenient unmarshalling.
		var generic map[string]any
		if err := hjson.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("failed to parse HJSON: %w", err)
		}
		b, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HJSON: %w", err)
		}
		if err := json.Unmarshal(b, &config); err != nil {
			return nil, fmt.Errorf("failed to parse HJSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}

	ip.ApplyDefaults(&config)
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ApplyDefaults fills the currency and assigns an ID to every investment missing one.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Currency == "" {
		config.Currency = "USD"
	}
	config.Currency = strings.ToUpper(config.Currency)
	for i := range config.Investments {
		inv := &config.Investments[i]
		inv.Name = strings.TrimSpace(inv.Name)
		if inv.Name == "" {
			inv.Name = fmt.Sprintf("Investment %d", i+1)
		}
		if inv.ID == "" {
			inv.ID = uuid.NewString()
		}
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Years <= 0 {
		return fmt.Errorf("years must be positive, got %d", config.Years)
	}
	if config.Years > domain.MaxYears {
		return fmt.Errorf("years must be at most %d, got %d", domain.MaxYears, config.Years)
	}

	if len(config.Investments) == 0 {
		return fmt.Errorf("no investments provided")
	}

	seen := make(map[string]bool, len(config.Investments))
	for i, inv := range config.Investments {
		if err := ip.validateInvestment(&inv); err != nil {
			return fmt.Errorf("investment %d validation failed: %w", i, err)
		}
		key := strings.ToLower(inv.Name)
		if seen[key] {
			return fmt.Errorf("investment %d: duplicate name %q", i, inv.Name)
		}
		seen[key] = true
	}
	return nil
}

func (ip *InputParser) validateInvestment(inv *domain.Investment) error {
	if inv.Name == "" {
		return fmt.Errorf("name is required")
	}
	if inv.InitialInvestment.IsNegative() {
		return fmt.Errorf("initial investment cannot be negative")
	}
	if inv.RecurringInvestment.IsNegative() {
		return fmt.Errorf("recurring investment cannot be negative")
	}
	if inv.PercentageReturn.LessThanOrEqual(minReturn) {
		return fmt.Errorf("percentage return must be greater than -100%%, got %s", inv.PercentageReturn)
	}
	return nil
}

// SaveConfiguration writes the configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vntrade/tariff-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
	assert.Equal(t, domain.MaxScenarios, parser.MaxScenarios)
	assert.NotEmpty(t, parser.Rates.TradeLanes)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	file, err := parser.LoadFromFile(filepath.Join("testdata", "scenarios.yaml"))

	require.NoError(t, err)
	require.Len(t, file.Scenarios, 3)
	assert.Equal(t, "Apparel and electronics", file.Title)
	assert.Equal(t, "tees", file.Scenarios[0].ID)
	assert.True(t, file.Scenarios[0].Input.VATPercent.Equal(domain.DefaultVATPercent))
	assert.True(t, file.Scenarios[1].Input.SavingsSplitPercent.Equal(decimal.NewFromInt(70)))

	// generated id for the scenario without one
	_, err = uuid.Parse(file.Scenarios[2].ID)
	assert.NoError(t, err)

	require.NotNil(t, file.Projection)
	assert.Equal(t, 5, file.Projection.YearCount)
	require.NotNil(t, file.Impact)
	assert.Equal(t, 3, file.Impact.Years)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	file, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, file)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeTemp(t, "scenarios:\n\t- id: broken\n")

	file, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, file)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidNumber(t *testing.T) {
	path := writeTemp(t, "scenarios:\n  - classification_key: \"61\"\n    input:\n      base_value: plenty\n")

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	err := NewInputParser().ValidateConfiguration(&domain.ScenarioFile{})
	assert.ErrorIs(t, err, ErrNoScenarios)
}

func TestValidateConfiguration_TooManyScenarios(t *testing.T) {
	parser := NewInputParser()
	file := parser.CreateExampleConfiguration()
	extra := file.Scenarios[0]
	extra.ID = "fourth"
	file.Scenarios = append(file.Scenarios, extra)

	err := parser.ValidateConfiguration(file)
	assert.ErrorIs(t, err, ErrTooManyScenarios)

	parser.MaxScenarios = 4
	assert.NoError(t, parser.ValidateConfiguration(file))
}

func TestValidateConfiguration_ExampleIsValid(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(parser.CreateExampleConfiguration()))
}

func TestValidateConfiguration_ExampleRoundTripsThroughYAML(t *testing.T) {
	parser := NewInputParser()
	data, err := yaml.Marshal(parser.CreateExampleConfiguration())
	require.NoError(t, err)

	file, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Len(t, file.Scenarios, 3)
	assert.Equal(t, "cotton-tees", file.Scenarios[0].ID)
}

func TestValidateConfiguration_ScenarioErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ScenarioFile)
		want   string
	}{
		{"missing key", func(f *domain.ScenarioFile) { f.Scenarios[0].ClassificationKey = " " }, "classification key is required"},
		{"bad incoterm", func(f *domain.ScenarioFile) { f.Scenarios[0].Incoterm = "XYZ" }, "incoterm must be one of"},
		{"unknown lane", func(f *domain.ScenarioFile) { f.Scenarios[0].TradeLane = "moon" }, "unknown trade lane"},
		{"duplicate id", func(f *domain.ScenarioFile) { f.Scenarios[1].ID = f.Scenarios[0].ID }, "duplicate id"},
		{"zero quantity", func(f *domain.ScenarioFile) { f.Scenarios[1].Input.Quantity = decimal.Zero }, "quantity must be positive"},
		{"split above 100", func(f *domain.ScenarioFile) { f.Scenarios[2].Input.SavingsSplitPercent = decimal.NewFromInt(120) }, "savings split percent"},
		{"negative override", func(f *domain.ScenarioFile) {
			v := decimal.NewFromInt(-1)
			f.Scenarios[0].DutyRateOverride = &v
		}, "duty rate override"},
		{"projection pass-through", func(f *domain.ScenarioFile) { f.Projection.ConsumerPassThrough = decimal.NewFromInt(2) }, "consumer pass-through"},
		{"impact years", func(f *domain.ScenarioFile) { f.Impact.Years = -1 }, "years must be between"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			file := parser.CreateExampleConfiguration()
			tt.mutate(file)

			err := parser.ValidateConfiguration(file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfiguration_InlineRatesDefineLanes(t *testing.T) {
	parser := NewInputParser()
	file := parser.CreateExampleConfiguration()
	file.Scenarios[0].TradeLane = "danang-seattle"
	file.Scenarios[2].TradeLane = ""
	file.Rates = &domain.RateTable{
		DefaultRatePercent: decimal.NewFromInt(5),
		TradeLanes:         []domain.TradeLane{{ID: "danang-seattle", Shipping: decimal.NewFromInt(900)}},
	}

	assert.NoError(t, parser.ValidateConfiguration(file))
}

func TestLoadRateTable(t *testing.T) {
	parser := NewInputParser()
	table, err := parser.LoadRateTable(filepath.Join("testdata", "rates.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "2025 schedule", table.Name)
	assert.True(t, table.DefaultRatePercent.Equal(decimal.NewFromInt(7)))
	require.Len(t, table.Rules, 2)
	require.Len(t, table.HSCodes, 1)
	require.NotNil(t, table.HSCodes[0].RatePercent)
	assert.True(t, table.HSCodes[0].RatePercent.Equal(decimal.RequireFromString("4.5")))
}

func TestValidateRateTable_Errors(t *testing.T) {
	parser := NewInputParser()

	err := parser.ValidateRateTable(&domain.RateTable{Rules: []domain.RateRule{{Prefix: " . "}}})
	assert.ErrorContains(t, err, "prefix is required")

	err = parser.ValidateRateTable(&domain.RateTable{Sectors: []domain.Sector{{ID: "a"}, {ID: "A"}}})
	assert.ErrorContains(t, err, "duplicate id")

	err = parser.ValidateRateTable(&domain.RateTable{DefaultRatePercent: decimal.NewFromInt(-1)})
	assert.ErrorContains(t, err, "default rate")
}

func TestLoadSettings(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	s, err := LoadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, ":8080", s.ServerAddr)
	assert.Equal(t, domain.MaxScenarios, s.MaxScenarios)
	assert.Equal(t, "rss", s.NewsSource)
	assert.Equal(t, DefaultNewsFeedURL, s.NewsFeedURL)
	assert.Equal(t, "standard", s.RateSchedule)

	v.Set("rates.schedule", "premium")
	_, err = LoadSettings(v)
	assert.ErrorContains(t, err, "unknown rate schedule")
	v.Set("rates.schedule", "pro")
	s, err = LoadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "pro", s.RateSchedule)

	v.Set("news.source", "newsapi")
	_, err = LoadSettings(v)
	assert.ErrorContains(t, err, "api_key")

	v.Set("news.api_key", "secret")
	s, err = LoadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "secret", s.NewsAPIKey)

	v.Set("logging.format", "xml")
	_, err = LoadSettings(v)
	assert.ErrorContains(t, err, "invalid log format")
}

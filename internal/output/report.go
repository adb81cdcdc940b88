package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/vntrade/tariff-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render formats a report with the named formatter.
func Render(report *domain.Report, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(report)
}

// GenerateReport writes the report to timestamped files in dir. "all" writes the
// console, detailed CSV and HTML variants. It returns the files written.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console-lite", "detailed-csv", "html"} {
			written, err := GenerateReport(report, name, dir)
			if err != nil {
				return files, err
			}
			files = append(files, written...)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	filename, err := WriteFormatted(f, report, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{filename}, nil
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveScenarioFile writes a scenario file as YAML.
func SaveScenarioFile(file *domain.ScenarioFile, filename string) error {
	b, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

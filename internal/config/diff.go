package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"gopkg.in/yaml.v3"
)

// DefaultYAML returns the built-in configuration as YAML.
func DefaultYAML() ([]byte, error) {
	return yaml.Marshal(DefaultConfig())
}

// Diff compares the config file at path against the built-in defaults and
// returns a human-readable report. An empty string means no differences.
func Diff(path string, useColor bool) (string, error) {
	current, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading config file: %w", err)
	}

	defaults, err := DefaultYAML()
	if err != nil {
		return "", fmt.Errorf("encoding defaults: %w", err)
	}

	return diffYAML(defaults, current, useColor)
}

func diffYAML(from, to []byte, useColor bool) (string, error) {
	if len(from) == 0 && len(to) == 0 {
		return "", nil
	}

	fromInput, err := parseYAMLInput("defaults", from)
	if err != nil {
		return "", fmt.Errorf("parsing defaults: %w", err)
	}

	toInput, err := parseYAMLInput("config", to)
	if err != nil {
		return "", fmt.Errorf("parsing config: %w", err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

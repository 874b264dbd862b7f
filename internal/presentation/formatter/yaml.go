package formatter

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mhowell/go-timetrack/internal/core/timeline"
)

type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) Format(w io.Writer, rows []timeline.Row) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(rows)
}

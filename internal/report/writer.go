// Package report formats robot orientations for output.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"toyrobot/internal/interpreter"
)

// Format selects how each report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown report format %q", s)
}

// Pose is the serialized form of one report.
type Pose struct {
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Facing string `json:"facing" yaml:"facing"`
}

func NewPose(o interpreter.Orientation) Pose {
	return Pose{X: o.Position.X, Y: o.Position.Y, Facing: o.Direction.String()}
}

// Writer writes one report per REPORT command to an io.Writer.
type Writer struct {
	format Format
	out    io.Writer
	json   *json.Encoder
	yaml   *yaml.Encoder
}

func NewWriter(out io.Writer, format Format) (*Writer, error) {
	w := &Writer{format: format, out: out}
	switch format {
	case FormatText:
	case FormatJSON:
		w.json = json.NewEncoder(out)
	case FormatYAML:
		w.yaml = yaml.NewEncoder(out)
		w.yaml.SetIndent(2)
	default:
		return nil, errors.Errorf("unknown report format %q", format)
	}
	return w, nil
}

// Report writes o in the writer's format: "x,y,FACING" lines for text,
// one object per line for json and one document per report for yaml.
func (w *Writer) Report(o interpreter.Orientation) error {
	var err error
	switch w.format {
	case FormatJSON:
		err = w.json.Encode(NewPose(o))
	case FormatYAML:
		err = w.yaml.Encode(NewPose(o))
	default:
		_, err = fmt.Fprintln(w.out, o)
	}
	return errors.Wrapf(err, "write %s report", w.format)
}

// Close finishes the yaml stream; it is a no-op for other formats.
func (w *Writer) Close() error {
	if w.yaml != nil {
		return w.yaml.Close()
	}
	return nil
}

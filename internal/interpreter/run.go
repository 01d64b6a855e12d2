package interpreter

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LineSource yields input lines in order and returns io.EOF once exhausted.
type LineSource interface {
	Next() (string, error)
}

// Run reads every line from src and executes it against ctx. Blank lines
// and lines starting with '#' are skipped. A line that fails to parse is
// logged, counted and skipped; the run only stops early when src or the
// sink fails.
func Run(ctx *Context, src LineSource) error {
	lineNo := 0
	for {
		raw, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "read line %d", lineNo+1)
		}
		lineNo++

		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		in, err := Parse(text)
		if err != nil {
			ctx.Stats.RecordParseError()
			fields := logrus.Fields{"line": lineNo, "input": text}
			var perr *ParseError
			if errors.As(err, &perr) {
				fields["reason"] = string(perr.Reason)
			}
			ctx.Log.WithFields(fields).WithError(err).Warn("skipping line")
			continue
		}

		if _, err := ctx.Exec(in); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
	}

	ctx.Log.WithFields(logrus.Fields{
		"lines":        ctx.Stats.Total(),
		"applied":      ctx.Stats.Count(Applied),
		"reported":     ctx.Stats.Count(Reported),
		"rejected":     ctx.Stats.Count(Rejected),
		"unplaced":     ctx.Stats.Count(Unplaced),
		"parse_errors": ctx.Stats.ParseErrors(),
	}).Info("run complete")
	return nil
}

package interpreter

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"toyrobot/internal/logging"
)

// Sink receives the orientation produced by each REPORT of a placed robot.
type Sink interface {
	Report(Orientation) error
}

// Context stores the robot, where its reports go and what a run has done so far

type Context struct {
	Robot *Robot
	Sink  Sink
	Stats *Stats
	Log   *logrus.Entry
}

// NewContext wires a robot to a sink. A nil log falls back to the package
// logger.
func NewContext(robot *Robot, sink Sink, log *logrus.Entry) *Context {
	if log == nil {
		log = logrus.NewEntry(logging.Logger)
	}
	return &Context{
		Robot: robot,
		Sink:  sink,
		Stats: NewStats(),
		Log:   log,
	}
}

// Exec runs one instruction and forwards a report to the sink. Boundary
// rejections and unplaced commands are outcomes, not errors; only a failing
// sink returns an error.
func (c *Context) Exec(in Instruction) (Outcome, error) {
	outcome := c.Robot.Execute(in)
	c.Stats.Record(outcome)

	switch outcome {
	case Reported:
		pose := c.Robot.Orientation()
		if c.Sink != nil {
			if err := c.Sink.Report(pose); err != nil {
				return outcome, errors.Wrap(err, "write report")
			}
		}
	case Rejected:
		c.Log.WithField("instruction", in).Debug("instruction would leave the table, ignored")
	case Unplaced:
		c.Log.WithField("instruction", in).Debug("robot not placed, ignored")
	}
	return outcome, nil
}

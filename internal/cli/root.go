package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"toyrobot/internal/config"
	"toyrobot/internal/input"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/logging"
	"toyrobot/internal/report"
	"toyrobot/internal/version"
)

type options struct {
	cfgFile string
	board   bool
}

// NewRootCommand builds the toyrobot command with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "toyrobot [script]",
		Short: "Drive a toy robot around a table",
		Long: `toyrobot reads PLACE, MOVE, LEFT, RIGHT and REPORT commands, one per line,
and moves a robot around a square table. Commands that would drop the robot
off the table are ignored.

Commands are read from the script file if one is given, otherwise from stdin.
When stdin is a terminal an interactive prompt is started.

Example:
  printf 'PLACE 1,2,EAST\nMOVE\nREPORT\n' | toyrobot`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, opts.cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, opts, args)
		},
	}

	cmd.Version = version.Short()
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	b := interpreter.DefaultBounds()
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is .toyrobot.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().String("format", string(report.FormatText), "report format: text, json, yaml")
	cmd.Flags().Int("max-x", b.MaxX, "largest x coordinate on the table")
	cmd.Flags().Int("max-y", b.MaxY, "largest y coordinate on the table")
	cmd.Flags().BoolVar(&opts.board, "board", false, "draw the table after the last command")

	_ = v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("report.format", cmd.Flags().Lookup("format"))
	_ = v.BindPFlag("table.max_x", cmd.Flags().Lookup("max-x"))
	_ = v.BindPFlag("table.max_y", cmd.Flags().Lookup("max-y"))

	cmd.AddCommand(newVersionCommand())
	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func initConfig(v *viper.Viper, cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "get working directory")
		}
		v.AddConfigPath(cwd)
		v.SetConfigType("yaml")
		v.SetConfigName(".toyrobot")
	}

	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, opts *options, args []string) (err error) {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logging.SetupLogger(cfg.Log.Level)

	sessionID := fmt.Sprintf("toyrobot-%s", uuid.New().String()[:8])
	log := logging.WithSession(sessionID)
	if path := v.ConfigFileUsed(); path != "" {
		log.WithField("config", path).Debug("using config file")
	}

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}
	sink, err := report.NewWriter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	defer closeInto(&err, sink, "flush report")

	src, closeSource, err := openSource(cmd, args)
	if err != nil {
		return err
	}
	defer closeSource()

	bounds := cfg.Table.Bounds()
	robot := interpreter.NewRobot(bounds)
	log.WithFields(logrus.Fields{
		"table":   fmt.Sprintf("%dx%d", bounds.Width(), bounds.Height()),
		"format":  format,
		"version": version.Short(),
		"commit":  version.ShortCommit(),
	}).Debug("starting run")

	if err := interpreter.Run(interpreter.NewContext(robot, sink, log), src); err != nil {
		return err
	}

	if opts.board {
		return bounds.Display(cmd.OutOrStdout(), robot)
	}
	return nil
}

// closeInto closes c and keeps its error in *errp unless an earlier one is
// already there.
func closeInto(errp *error, c io.Closer, what string) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = errors.Wrap(cerr, what)
	}
}

func openSource(cmd *cobra.Command, args []string) (interpreter.LineSource, func() error, error) {
	if len(args) == 1 && args[0] != "-" {
		f, err := input.OpenFile(args[0])
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && f == os.Stdin && input.IsTerminal(f) {
		p, err := input.NewPromptSource("> ", nil, nil)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
	return input.NewReaderSource(in), func() error { return nil }, nil
}

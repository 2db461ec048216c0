// Package command contains the commands of the hugecalc binary.
package command

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/bigdecimal/internal/config"
	"github.com/govalues/bigdecimal/internal/logging"
)

// app is the state shared by all commands of a single invocation.
type app struct {
	cfg        config.Config
	configFile string
	logger     log.Logger
}

func newApp(stderr io.Writer) *app {
	cfg := config.Default()
	return &app{
		cfg:    cfg,
		logger: logging.Must(stderr, cfg.LogLevel),
	}
}

// Execute runs hugecalc with the given arguments and streams.
// Failures are logged to stderr before being returned.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := newApp(stderr)
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		level.Error(a.logger).Log("msg", "command failed", "err", err)
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hugecalc",
		Short: "hugecalc performs exact decimal arithmetic on numbers of any size.",
		Long: "hugecalc performs exact decimal arithmetic on numbers of any size.\n\n" +
			"Addition, subtraction and multiplication are exact. Division is truncated\n" +
			"to --precision digits after the decimal point.\n\n" +
			"Operands starting with a minus sign must follow \"--\" so they are not\n" +
			"taken for flags, as in: hugecalc sub -- -1.5 2",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a YAML configuration file. Flags take precedence over its values.")
	a.cfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.binaryCommand(addOp),
		a.binaryCommand(subOp),
		a.binaryCommand(mulOp),
		a.binaryCommand(divOp),
		a.evalCommand(),
	)
	return root
}

// setup loads the configuration file, validates the result and rebuilds
// the logger at the configured level.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configFile != "" {
		file, err := config.Load(a.configFile)
		if err != nil {
			return errors.Wrapf(err, "loading %s", a.configFile)
		}
		a.cfg.Merge(file, cmd.Flags())
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	level.Debug(a.logger).Log("msg", "configuration loaded", "precision", a.cfg.Precision, "log_level", a.cfg.LogLevel, "config_file", a.configFile)
	return nil
}

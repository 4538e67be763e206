// Package cli implements the s2cell command line tool on top of package s2.
package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/akhenakh/s2cells/s2"
)

// EnvPrefix is the prefix of the environment variables read by every command.
const EnvPrefix = "S2CELL"

// SubCommand pairs a cobra command with the viper instance holding its
// configuration. Values resolve from flags, then S2CELL_* environment
// variables, then the config file, then flag defaults.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

type app struct {
	log *zap.Logger
}

func newApp() *app {
	log, err := NewLogger("info")
	if err != nil {
		log = zap.NewNop()
	}
	return &app{log: log}
}

// NewRootCmd returns the s2cell root command with all sub-commands attached.
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "s2cell",
		Short: "Inspect S2 cells, tokens and coverings",
		Long: `
s2cell converts between coordinates and S2 cell ids, prints the geometry of
cells, lists their neighbors and computes cap coverings.

Negative coordinates must follow "--" so they are not read as flags:

  s2cell token -- -33.8688 151.2093
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	root.PersistentFlags().String("log_level", "info",
		"Log level, one of [debug, info, warn, error].")

	subcommands := []*SubCommand{
		a.tokenCmd(), a.infoCmd(), a.neighborsCmd(), a.coverCmd(), a.geojsonCmd(),
	}
	for _, sc := range subcommands {
		root.AddCommand(sc.Cmd)
		sc.EnvPrefix = EnvPrefix
		sc.Conf = viper.New()
		bindFlags(sc.Conf, sc.Cmd.Flags(), root.PersistentFlags())
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
		sc.Conf.AutomaticEnv()
		sc.Cmd.PreRunE = a.setup(sc)
	}
	return root
}

func bindFlags(conf *viper.Viper, sets ...*flag.FlagSet) {
	for _, fs := range sets {
		// BindPFlags only fails on a nil flag.
		_ = conf.BindPFlags(fs)
	}
}

// setup reads the config file, if any, and replaces the logger with one at
// the configured level.
func (a *app) setup(sc *SubCommand) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg := sc.Conf.GetString("config"); cfg != "" {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "reading config %s", cfg)
			}
		}
		log, err := NewLogger(sc.Conf.GetString("log_level"))
		if err != nil {
			return err
		}
		a.log = log.Named(cmd.Name())
		return nil
	}
}

// Execute runs the root command on the process arguments and returns the
// exit code. A failure is logged once here.
func Execute() int {
	a := newApp()
	root := a.rootCmd()
	err := root.Execute()
	if err != nil {
		a.log.Error("command failed", zap.Error(err))
	}
	_ = a.log.Sync()
	if err != nil {
		return 1
	}
	return 0
}

func parseDegrees(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errors.Wrapf(s2.ErrInvalidArgument, "%s %q", name, arg)
	}
	return v, nil
}

func parseLatLng(latArg, lngArg string) (s2.LatLng, error) {
	lat, err := parseDegrees("latitude", latArg)
	if err != nil {
		return s2.LatLng{}, err
	}
	lng, err := parseDegrees("longitude", lngArg)
	if err != nil {
		return s2.LatLng{}, err
	}
	ll := s2.LatLngFromDegrees(lat, lng)
	if !ll.IsValid() {
		return s2.LatLng{}, errors.Wrapf(s2.ErrInvalidArgument, "coordinates %v out of range", ll)
	}
	return ll, nil
}

// parseCell parses a token into a valid cell id.
func parseCell(token string) (s2.CellID, error) {
	id, err := s2.ParseToken(token)
	if err != nil {
		return 0, err
	}
	if !id.IsValid() {
		return 0, errors.Wrapf(s2.ErrInvalidToken, "%q is not a valid cell", token)
	}
	return id, nil
}

func checkLevel(level int) error {
	if level < 0 || level > s2.MaxLevel {
		return errors.Wrapf(s2.ErrInvalidArgument, "level %d not in [0, %d]", level, s2.MaxLevel)
	}
	return nil
}

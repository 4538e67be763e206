package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akhenakh/s2cells/s2"
)

func (a *app) tokenCmd() *SubCommand {
	sc := &SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "token <lat> <lng>",
		Short: "Print the token of the cell containing a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ll, err := parseLatLng(args[0], args[1])
			if err != nil {
				return err
			}
			level := sc.Conf.GetInt("level")
			if err := checkLevel(level); err != nil {
				return err
			}
			id := s2.CellIDFromLatLng(ll).Parent(level)
			a.log.Debug("token", zap.Stringer("latlng", ll), zap.Int("level", level), zap.Stringer("cell", id))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id.ToToken())
			return err
		},
	}
	sc.Cmd.Flags().Int("level", s2.MaxLevel, "Cell level, 0 (face) to 30 (leaf).")
	return sc
}

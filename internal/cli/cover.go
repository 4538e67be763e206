package cli

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akhenakh/s2cells/s1"
	"github.com/akhenakh/s2cells/s2"
)

func (a *app) coverCmd() *SubCommand {
	sc := &SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "cover <lat> <lng> <radius_deg>",
		Short: "Print a few cells covering a spherical cap",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ll, err := parseLatLng(args[0], args[1])
			if err != nil {
				return err
			}
			radius, err := parseDegrees("radius", args[2])
			if err != nil {
				return err
			}
			if radius < 0 {
				return errors.Wrapf(s2.ErrInvalidArgument, "radius %v is negative", radius)
			}

			c := s2.CapFromCenterAngle(s2.PointFromLatLng(ll), s1.AngleFromDegrees(radius))
			ids := c.CellUnionBound()
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			a.log.Debug("cover", zap.Stringer("cap", c), zap.Int("cells", len(ids)))

			out := cmd.OutOrStdout()
			for _, id := range ids {
				if _, err := fmt.Fprintln(out, id.ToToken()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return sc
}

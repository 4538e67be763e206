package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akhenakh/s2cells/s2"
)

func (a *app) infoCmd() *SubCommand {
	sc := &SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "info <token>",
		Short: "Print the geometry of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCell(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("info", zap.Stringer("cell", id))
			return writeInfo(cmd.OutOrStdout(), s2.CellFromCellID(id))
		},
	}
	return sc
}

func writeInfo(out io.Writer, c s2.Cell) error {
	id := c.ID()
	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "token:\t%s\n", id.ToToken())
	fmt.Fprintf(w, "id:\t%d\n", uint64(id))
	fmt.Fprintf(w, "path:\t%v\n", id)
	fmt.Fprintf(w, "face:\t%d\n", c.Face())
	fmt.Fprintf(w, "level:\t%d\n", c.Level())
	fmt.Fprintf(w, "pos:\t%#016x\n", id.Pos())
	fmt.Fprintf(w, "orientation:\t%d\n", c.Orientation())
	fmt.Fprintf(w, "center:\t%v\n", s2.LatLngFromPoint(c.Center()))
	for k := 0; k < 4; k++ {
		fmt.Fprintf(w, "vertex %d:\t%v\n", k, s2.LatLngFromPoint(c.Vertex(k)))
	}
	fmt.Fprintf(w, "exact area:\t%.6e sr\n", c.ExactArea())
	fmt.Fprintf(w, "approx area:\t%.6e sr\n", c.ApproxArea())
	fmt.Fprintf(w, "average area:\t%.6e sr\n", c.AverageArea())
	fmt.Fprintf(w, "rect bound:\t%v\n", c.RectBound())
	fmt.Fprintf(w, "cap bound:\t%v\n", c.CapBound())
	return w.Flush()
}

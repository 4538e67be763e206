package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akhenakh/s2cells/s2"
)

// Neighbor kinds accepted by the neighbors command.
const (
	kindEdge   = "edge"
	kindVertex = "vertex"
	kindAll    = "all"
)

func (a *app) neighborsCmd() *SubCommand {
	sc := &SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "neighbors <token>",
		Short: "List the neighbors of a cell",
		Long: `
Lists the neighbors of a cell, one token per line.

  edge    the four cells sharing an edge, at the cell's level
  vertex  the cells around the closest vertex, at --level (default: one level up)
  all     every cell touching the cell, at --level (default: the cell's level)
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCell(args[0])
			if err != nil {
				return err
			}
			kind := sc.Conf.GetString("kind")
			level := sc.Conf.GetInt("level")
			neighbors, err := neighborsOf(id, kind, level)
			if err != nil {
				return err
			}
			a.log.Debug("neighbors", zap.Stringer("cell", id), zap.String("kind", kind),
				zap.Int("count", len(neighbors)))
			out := cmd.OutOrStdout()
			for _, n := range neighbors {
				if _, err := fmt.Fprintln(out, n.ToToken()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	sc.Cmd.Flags().String("kind", kindEdge, "Neighbor kind, one of [edge, vertex, all].")
	sc.Cmd.Flags().Int("level", -1, "Level of the returned neighbors for vertex and all.")
	return sc
}

// neighborsOf returns the neighbors of id. A negative level selects the
// default level for the kind.
func neighborsOf(id s2.CellID, kind string, level int) ([]s2.CellID, error) {
	switch kind {
	case kindEdge:
		n := id.EdgeNeighbors()
		return n[:], nil
	case kindVertex:
		if level < 0 {
			level = id.Level() - 1
		}
		if level < 0 || level >= id.Level() {
			return nil, errors.Wrapf(s2.ErrInvalidArgument,
				"vertex neighbor level %d must be below the cell level %d", level, id.Level())
		}
		return id.VertexNeighbors(level), nil
	case kindAll:
		if level < 0 {
			level = id.Level()
		}
		if level < id.Level() || level > s2.MaxLevel {
			return nil, errors.Wrapf(s2.ErrInvalidArgument,
				"neighbor level %d not in [%d, %d]", level, id.Level(), s2.MaxLevel)
		}
		return id.AllNeighbors(level), nil
	}
	return nil, errors.Wrapf(s2.ErrInvalidArgument, "neighbor kind %q", kind)
}

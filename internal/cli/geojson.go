package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	geojson "github.com/paulmach/go.geojson"

	"github.com/akhenakh/s2cells/s2"
)

func (a *app) geojsonCmd() *SubCommand {
	sc := &SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "geojson <token>...",
		Short: "Print cells as a GeoJSON FeatureCollection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]s2.CellID, 0, len(args))
			for _, arg := range args {
				id, err := parseCell(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			data, err := cellsToGeoJSON(ids).MarshalJSON()
			if err != nil {
				return errors.Wrap(err, "encoding geojson")
			}
			a.log.Debug("geojson", zap.Int("cells", len(ids)), zap.Int("bytes", len(data)))
			data = append(data, '\n')
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	return sc
}

// cellsToGeoJSON returns one polygon feature per cell. Rings are closed and
// follow the counter-clockwise vertex order of the cell.
func cellsToGeoJSON(ids []s2.CellID) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, id := range ids {
		c := s2.CellFromCellID(id)
		ring := make([][]float64, 0, 5)
		for k := 0; k < 4; k++ {
			ll := s2.LatLngFromPoint(c.Vertex(k))
			ring = append(ring, []float64{ll.Lng.Degrees(), ll.Lat.Degrees()})
		}
		ring = append(ring, ring[0])

		f := geojson.NewPolygonFeature([][][]float64{ring})
		f.SetProperty("token", id.ToToken())
		f.SetProperty("level", id.Level())
		f.SetProperty("face", id.Face())
		fc.AddFeature(f)
	}
	return fc
}

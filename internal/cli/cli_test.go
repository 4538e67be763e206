package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	geojson "github.com/paulmach/go.geojson"

	"github.com/akhenakh/s2cells/s2"
)

// run executes the root command with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{}, args...))
	err := root.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Fields(strings.TrimSpace(s))
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "--level", "0", "0", "0")
	require.NoError(t, err)
	require.Equal(t, "1", strings.TrimSpace(out))

	out, err = run(t, "token", "--level", "12", "--", "-33.8688", "151.2093")
	require.NoError(t, err)
	want := s2.CellIDFromLatLng(s2.LatLngFromDegrees(-33.8688, 151.2093)).Parent(12)
	require.Equal(t, want.ToToken(), strings.TrimSpace(out))

	out, err = run(t, "token", "48.8566", "2.3522")
	require.NoError(t, err)
	id, err := s2.ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	require.True(t, id.IsLeaf())
}

func TestTokenCommandErrors(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"token", "--level", "31", "0", "0"}, s2.ErrInvalidArgument},
		{[]string{"token", "north", "0"}, s2.ErrInvalidArgument},
		{[]string{"token", "91", "0"}, s2.ErrInvalidArgument},
	}
	for _, test := range tests {
		_, err := run(t, test.args...)
		require.Error(t, err, "args %v", test.args)
		require.True(t, errors.Is(err, test.want), "args %v: error %v", test.args, err)
	}

	_, err := run(t, "token", "1")
	require.Error(t, err)
}

func TestTokenCommandEnvironment(t *testing.T) {
	t.Setenv("S2CELL_LEVEL", "5")
	out, err := run(t, "token", "10", "20")
	require.NoError(t, err)
	id, err := s2.ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, 5, id.Level())

	// Flags win over the environment.
	out, err = run(t, "token", "--level", "7", "10", "20")
	require.NoError(t, err)
	id, err = s2.ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, 7, id.Level())
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "s2cell.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("level: 3\nlog_level: warn\n"), 0o600))

	out, err := run(t, "token", "--config", cfg, "10", "20")
	require.NoError(t, err)
	id, err := s2.ParseToken(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, 3, id.Level())

	_, err = run(t, "token", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "10", "20")
	require.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	id := s2.CellIDFromLatLng(s2.LatLngFromDegrees(40.7128, -74.0060)).Parent(10)
	out, err := run(t, "info", id.ToToken())
	require.NoError(t, err)
	require.Contains(t, out, "token:")
	require.Contains(t, out, id.ToToken())
	require.Contains(t, out, "level:")
	require.Contains(t, out, "vertex 3:")
	require.Contains(t, out, id.String())

	for _, bad := range []string{"X", "zz", "0123456789abcdef0"} {
		_, err := run(t, "info", bad)
		require.True(t, errors.Is(err, s2.ErrInvalidToken), "info %q: error %v", bad, err)
	}
}

func TestNeighborsCommand(t *testing.T) {
	face1 := s2.CellIDFromFace(1)
	out, err := run(t, "neighbors", face1.ToToken())
	require.NoError(t, err)
	var want []string
	for _, n := range face1.EdgeNeighbors() {
		want = append(want, n.ToToken())
	}
	require.Equal(t, want, lines(out))

	id := s2.CellIDFromLatLng(s2.LatLngFromDegrees(10, 10)).Parent(8)
	out, err = run(t, "neighbors", "--kind", "vertex", id.ToToken())
	require.NoError(t, err)
	got := lines(out)
	require.GreaterOrEqual(t, len(got), 3)
	for _, tok := range got {
		n, err := s2.ParseToken(tok)
		require.NoError(t, err)
		require.Equal(t, 7, n.Level())
	}

	out, err = run(t, "neighbors", "--kind", "all", "--level", "9", id.ToToken())
	require.NoError(t, err)
	want = want[:0]
	for _, n := range id.AllNeighbors(9) {
		want = append(want, n.ToToken())
	}
	require.Equal(t, want, lines(out))
}

func TestNeighborsCommandErrors(t *testing.T) {
	face := s2.CellIDFromFace(0).ToToken()
	tests := [][]string{
		{"neighbors", "--kind", "vertex", face},
		{"neighbors", "--kind", "all", "--level", "31", face},
		{"neighbors", "--kind", "diagonal", face},
	}
	for _, args := range tests {
		_, err := run(t, args...)
		require.True(t, errors.Is(err, s2.ErrInvalidArgument), "args %v: error %v", args, err)
	}
}

func TestCoverCommand(t *testing.T) {
	out, err := run(t, "cover", "--", "45", "-73", "0.5")
	require.NoError(t, err)
	got := lines(out)
	require.NotEmpty(t, got)

	center := s2.CellIDFromLatLng(s2.LatLngFromDegrees(45, -73))
	covered := false
	for _, tok := range got {
		id, err := s2.ParseToken(tok)
		require.NoError(t, err)
		require.True(t, id.IsValid())
		if id.Contains(center) {
			covered = true
		}
	}
	require.True(t, covered, "covering %v does not contain the cap center", got)

	_, err = run(t, "cover", "--", "45", "-73", "-1")
	require.True(t, errors.Is(err, s2.ErrInvalidArgument))
}

func TestGeoJSONCommand(t *testing.T) {
	a := s2.CellIDFromLatLng(s2.LatLngFromDegrees(10, 20)).Parent(6)
	b := s2.CellIDFromFace(2)
	out, err := run(t, "geojson", a.ToToken(), b.ToToken())
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection([]byte(out))
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	for i, id := range []s2.CellID{a, b} {
		f := fc.Features[i]
		require.True(t, f.Geometry.IsPolygon())
		require.Len(t, f.Geometry.Polygon, 1)
		ring := f.Geometry.Polygon[0]
		require.Len(t, ring, 5)
		require.Equal(t, ring[0], ring[4])

		tok, err := f.PropertyString("token")
		require.NoError(t, err)
		require.Equal(t, id.ToToken(), tok)
	}

	_, err = run(t, "geojson", "not-a-token")
	require.True(t, errors.Is(err, s2.ErrInvalidToken))
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log, err := NewLogger(level)
		require.NoError(t, err, level)
		require.NotNil(t, log)
	}
	_, err := NewLogger("loud")
	require.Error(t, err)
}

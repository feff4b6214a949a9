package metricline

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphite(t *testing.T) {
	t.Run("no arguments no output", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatGraphite, &buf).Graphite(GraphiteLine{}))
		assert.Empty(t, buf.String())
	})
	t.Run("explicit timestamp", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatGraphite, &buf).Graphite(GraphiteLine{
			Path:      Text("a.b"),
			Value:     Int(5),
			Timestamp: Int(100),
		}))
		assert.Equal(t, "a.b 5 100\n", buf.String())
	})
	t.Run("timestamp defaults to current time", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatGraphite, &buf).Graphite(GraphiteLine{
			Path:  Text("a.b"),
			Value: Int(5),
		}))
		assert.Equal(t, fmt.Sprintf("a.b 5 %d\n", testClock.Unix()), buf.String())
	})
	t.Run("error prints verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatGraphite, &buf).Graphite(GraphiteLine{
			Path:      Err(fmt.Errorf("CheckLoad CRITICAL: no data")),
			Value:     Int(5),
			Timestamp: Int(100),
		}))
		assert.Equal(t, "CheckLoad CRITICAL: no data\n", buf.String())
	})
	t.Run("missing value prints path", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatGraphite, &buf).Graphite(GraphiteLine{
			Path: Text("a.b"),
		}))
		assert.Equal(t, "a.b\n", buf.String())
	})
}

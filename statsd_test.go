package metricline

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsd(t *testing.T) {
	t.Run("no arguments no output", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatStatsd, &buf).Statsd(StatsdLine{}))
		assert.Empty(t, buf.String())
	})
	t.Run("type defaults to kv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatStatsd, &buf).Statsd(StatsdLine{
			Name:  Text("x"),
			Value: Int(1),
		}))
		assert.Equal(t, "x:1|kv\n", buf.String())
	})
	t.Run("explicit type", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatStatsd, &buf).Statsd(StatsdLine{
			Name:  Text("x"),
			Value: Int(1),
			Type:  Text("g"),
		}))
		assert.Equal(t, "x:1|g\n", buf.String())
	})
	t.Run("error prints verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatStatsd, &buf).Statsd(StatsdLine{
			Name:  Err(fmt.Errorf("boom")),
			Value: Int(1),
			Type:  Text("g"),
		}))
		assert.Equal(t, "boom\n", buf.String())
	})
	t.Run("missing value prints name", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, testEmitter(FormatStatsd, &buf).Statsd(StatsdLine{
			Name: Text("x"),
		}))
		assert.Equal(t, "x\n", buf.String())
	})
}

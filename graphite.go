package metricline

import "fmt"

// GraphiteLine is the argument set of the plaintext protocol
// renderer.
type GraphiteLine struct {
	Path      Field
	Value     Field
	Timestamp Field
}

// Graphite writes one `path value timestamp` line. A line with no
// value degrades to printing the path field verbatim, which is how
// check errors travel through every renderer.
func (e *Emitter) Graphite(line GraphiteLine) error {
	if empty(line.Path, line.Value, line.Timestamp) {
		return nil
	}
	if line.Path.IsErr() || line.Value.Missing() {
		return e.println(line.Path.String())
	}
	ts := line.Timestamp
	if ts.Missing() {
		ts = Int(e.now().Unix())
	}
	return e.println(fmt.Sprintf("%s %s %s", line.Path, line.Value, ts))
}

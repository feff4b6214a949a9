package metricline

import "fmt"

// defaultStatsdType marks lines whose type the caller left open;
// collectors treat kv as a plain key/value sample.
const defaultStatsdType = "kv"

// StatsdLine is the argument set of the datagram renderer.
type StatsdLine struct {
	Name  Field
	Value Field
	Type  Field
}

// Statsd writes one `name:value|type` datagram line.
func (e *Emitter) Statsd(line StatsdLine) error {
	if empty(line.Name, line.Value, line.Type) {
		return nil
	}
	if line.Name.IsErr() || line.Value.Missing() {
		return e.println(line.Name.String())
	}
	typ := line.Type
	if typ.Missing() {
		typ = Text(defaultStatsdType)
	}
	return e.println(fmt.Sprintf("%s:%s|%s", line.Name, line.Value, typ))
}

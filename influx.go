package metricline

import "fmt"

// InfluxLine is the argument set of the line protocol renderer.
// Fields is either a bare integer sample or an already joined
// "k=v,k=v" field set; Tags is the already joined "k=v,k=v" tag set.
type InfluxLine struct {
	Measurement Field
	Fields      Field
	Tags        Field
	Timestamp   Field
}

// Influx writes one `measurement[,tags] fields timestamp` line. A
// bare integer sample is rewritten into a `value=` field.
func (e *Emitter) Influx(line InfluxLine) error {
	if empty(line.Measurement, line.Fields, line.Tags, line.Timestamp) {
		return nil
	}
	if line.Measurement.IsErr() || line.Fields.Missing() {
		return e.println(line.Measurement.String())
	}
	fields := line.Fields
	if fields.isInt() {
		fields = Text("value=" + fields.String())
	}
	ts := line.Timestamp
	if ts.Missing() {
		ts = Int(e.now().Unix())
	}
	measurement := joinPresent(",", line.Measurement, line.Tags)
	return e.println(fmt.Sprintf("%s %s %s", measurement, fields, ts))
}

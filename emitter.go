package metricline

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Emitter renders single metric lines onto its writer. It holds no
// state between calls; serializing concurrent access to the writer is
// the caller's concern.
type Emitter struct {
	out    io.Writer
	format Format
	logger Logger
	now    func() time.Time
}

// NewEmitter builds an emitter for the given format. A nil writer
// means standard output, a nil logger discards, an empty format falls
// back to the default.
func NewEmitter(format Format, out io.Writer, logger Logger) *Emitter {
	if format == "" {
		format = DefaultFormat
	}
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = noopLogger{}
	}
	return &Emitter{
		out:    out,
		format: format,
		logger: logger,
		now:    time.Now,
	}
}

// Emit resolves the record into the active format's renderer
// arguments and writes the line. Field fallback is first non-missing
// wins. An unknown format writes nothing.
func (e *Emitter) Emit(r Record) error {
	switch e.format {
	case FormatJSON:
		obj := r.Object
		if obj == nil {
			obj = r.objectPayload()
		}
		return e.Object(ObjectLine{Object: obj})
	case FormatGraphite:
		return e.Graphite(GraphiteLine{
			Path:      firstPresent(r.GraphitePath, r.Name),
			Value:     r.Value,
			Timestamp: r.Timestamp,
		})
	case FormatStatsd:
		return e.Statsd(StatsdLine{
			Name:  firstPresent(r.StatsdName, r.Name),
			Value: r.Value,
			Type:  r.StatsdType,
		})
	case FormatDogstatsd:
		return e.Dogstatsd(DogstatsdLine{
			Name:  firstPresent(r.DogstatsdName, r.StatsdName, r.Name),
			Value: r.Value,
			Type:  firstPresent(r.DogstatsdType, r.StatsdType),
			Tags:  r.Tags.field(":"),
		})
	case FormatInfluxDB:
		return e.Influx(InfluxLine{
			Measurement: firstPresent(r.InfluxMeasurement, r.Name),
			Fields:      firstPresent(r.InfluxFields, r.Value),
			Tags:        r.Tags.field("="),
			Timestamp:   r.Timestamp,
		})
	default:
		e.logger.Errorf("unknown output format %q, dropping metric", e.format)
		return nil
	}
}

func (e *Emitter) println(line string) error {
	e.logger.Debugf("writing metric line: %s", line)
	_, err := fmt.Fprintln(e.out, line)
	return err
}

// firstPresent returns the first non-missing candidate.
func firstPresent(candidates ...Field) Field {
	for _, c := range candidates {
		if !c.Missing() {
			return c
		}
	}
	return Field{}
}

// joinPresent joins the string form of present fields, dropping
// missing ones entirely.
func joinPresent(sep string, fields ...Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Missing() {
			continue
		}
		parts = append(parts, f.String())
	}
	return strings.Join(parts, sep)
}

// empty reports whether every field of a renderer argument struct is
// missing, which is the no-output case.
func empty(fields ...Field) bool {
	for _, f := range fields {
		if !f.Missing() {
			return false
		}
	}
	return true
}

type noopLogger struct{}

func (noopLogger) Debug(string)                  {}
func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Info(string)                   {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Error(string)                  {}
func (noopLogger) Errorf(string, ...interface{}) {}

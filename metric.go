package metricline

import (
	"encoding/json"
	"strings"
)

// Tag is one key/value pair attached to a metric.
type Tag struct {
	Key   string
	Value string
}

// MarshalJSON keeps the serialized form of a tag as a two-element
// array.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Key, t.Value})
}

// Tags preserves the caller's pair order; serialized tag strings join
// first to last.
type Tags []Tag

// Join renders the pairs with sep between key and value, comma
// separated between pairs: Join(":") gives "k1:v1,k2:v2".
func (t Tags) Join(sep string) string {
	var b strings.Builder
	for i, tag := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(tag.Key)
		b.WriteString(sep)
		b.WriteString(tag.Value)
	}
	return b.String()
}

// field maps the pair list onto a renderer argument. An empty list is
// the missing variant, never a present-but-empty string.
func (t Tags) field(sep string) Field {
	if len(t) == 0 {
		return Field{}
	}
	return Text(t.Join(sep))
}

// Record is one metric event: the generic fields every format shares
// plus the per-format overrides the dispatcher resolves through its
// fallback chains. A record is never mutated by the library.
type Record struct {
	Name      Field
	Value     Field
	Tags      Tags
	Timestamp Field

	GraphitePath      Field
	StatsdName        Field
	StatsdType        Field
	DogstatsdName     Field
	DogstatsdType     Field
	InfluxMeasurement Field
	InfluxFields      Field

	// Object replaces the payload of the json format entirely when
	// set.
	Object map[string]interface{}
}

// objectPayload builds the json payload from the generic fields. The
// timestamp is left to the renderer when the record carries none.
func (r Record) objectPayload() map[string]interface{} {
	tags := r.Tags
	if tags == nil {
		tags = Tags{}
	}
	obj := map[string]interface{}{
		"metric_name": r.Name.String(),
		"value":       r.Value.Value(),
		"tags":        tags,
	}
	if !r.Timestamp.Missing() {
		obj["timestamp"] = r.Timestamp.Value()
	}
	return obj
}

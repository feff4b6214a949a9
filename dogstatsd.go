package metricline

import "fmt"

// DogstatsdLine is the argument set of the tagged datagram renderer.
// Tags is the already joined "k:v,k:v" string; a present but empty
// string still emits the "#" segment.
type DogstatsdLine struct {
	Name  Field
	Value Field
	Type  Field
	Tags  Field
}

// Dogstatsd writes one `name:value|type|#tags` datagram line,
// dropping the tags segment when the field is missing.
func (e *Emitter) Dogstatsd(line DogstatsdLine) error {
	if empty(line.Name, line.Value, line.Type, line.Tags) {
		return nil
	}
	if line.Name.IsErr() || line.Value.Missing() {
		return e.println(line.Name.String())
	}
	typ := line.Type
	if typ.Missing() {
		typ = Text(defaultStatsdType)
	}
	tags := line.Tags
	if !tags.Missing() {
		tags = Text("#" + tags.String())
	}
	return e.println(joinPresent("|",
		Text(fmt.Sprintf("%s:%s", line.Name, line.Value)),
		typ,
		tags,
	))
}

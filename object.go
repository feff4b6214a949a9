package metricline

import (
	"encoding/json"
	"fmt"
)

// ObjectLine is the argument of the json renderer: either a verbatim
// message (text or error) or a payload mapping.
type ObjectLine struct {
	Message Field
	Object  map[string]interface{}
}

// Object serializes one metric event as a JSON line. A payload gets a
// unix timestamp injected when it carries none; anything that is
// neither a message nor a mapping writes nothing.
func (e *Emitter) Object(line ObjectLine) error {
	switch {
	case line.Message.kind == fieldText || line.Message.IsErr():
		return e.println(line.Message.String())
	case line.Message.Missing() && line.Object != nil:
		obj := line.Object
		if !hasTimestamp(obj) {
			// copy before injecting, the caller's map stays untouched
			obj = make(map[string]interface{}, len(line.Object)+1)
			for k, v := range line.Object {
				obj[k] = v
			}
			obj["timestamp"] = e.now().Unix()
		}
		out, err := json.Marshal(obj)
		if err != nil {
			return fmt.Errorf("could not marshal metric payload: %w", err)
		}
		return e.println(string(out))
	default:
		return nil
	}
}

// hasTimestamp follows the truthiness the format's consumers expect:
// absent, nil and false timestamps get replaced, a numeric zero
// stays.
func hasTimestamp(obj map[string]interface{}) bool {
	ts, ok := obj["timestamp"]
	if !ok || ts == nil {
		return false
	}
	if b, isBool := ts.(bool); isBool {
		return b
	}
	return true
}

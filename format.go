package metricline

// Format selects the output line format.
type Format string

const (
	FormatJSON      Format = "json"
	FormatGraphite  Format = "graphite"
	FormatStatsd    Format = "statsd"
	FormatDogstatsd Format = "dogstatsd"
	FormatInfluxDB  Format = "influxdb"
)

// DefaultFormat is used when no format was configured.
const DefaultFormat = FormatGraphite

// ParseFormat maps a configured name onto a Format.
func ParseFormat(name string) (Format, bool) {
	switch f := Format(name); f {
	case FormatJSON, FormatGraphite, FormatStatsd, FormatDogstatsd, FormatInfluxDB:
		return f, true
	default:
		return "", false
	}
}

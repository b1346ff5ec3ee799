package config

//go:generate go tool go-enum --marshal --names

// Specification of requested output format for decoded styles.
// ENUM(json, yaml, css)
type OutputFormat int

// Ext returns file extension conventionally used for the format.
func (o OutputFormat) Ext() string {
	switch o {
	case OutputFormatJson:
		return ".json"
	case OutputFormatYaml:
		return ".yaml"
	case OutputFormatCss:
		return ".css"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

package messages

// Settings file loading and validation errors.
const (
	ConfigReadFmt         = "read settings %s: %w"
	ConfigParseFmt        = "parse settings %s: %w"
	ConfigUnknownModeFmt  = "ui.mode must be \"console\" or \"gui\", got %q"
	ConfigNegativeTimeout = "probe.timeout_seconds must not be negative"
)

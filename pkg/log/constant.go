package log

// Modes
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Encodings
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Field keys
const (
	FieldRequestID = "request_id"
)

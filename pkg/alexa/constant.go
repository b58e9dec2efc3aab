package alexa

// Version is stamped on every outbound envelope.
const Version = "1.0"

// RequestType discriminates the request union.
type RequestType string

const (
	RequestTypeLaunch       RequestType = "LaunchRequest"
	RequestTypeIntent       RequestType = "IntentRequest"
	RequestTypeSessionEnded RequestType = "SessionEndedRequest"
)

// SpeechType is the kind of an output speech payload.
type SpeechType string

const (
	SpeechTypePlainText SpeechType = "PlainText"
	SpeechTypeSSML      SpeechType = "SSML"
)

// CardTypeSimple is the only card kind the builder emits.
const CardTypeSimple = "Simple"

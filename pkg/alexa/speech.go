package alexa

// Speaker is anything the builder accepts as output or reprompt speech.
type Speaker interface {
	OutputSpeech() OutputSpeech
}

// PlainText is a bare string spoken as plain text.
type PlainText string

// OutputSpeech implements Speaker.
func (p PlainText) OutputSpeech() OutputSpeech {
	return OutputSpeech{Type: SpeechTypePlainText, Text: string(p)}
}

// SSML is a bare markup string.
type SSML string

// OutputSpeech implements Speaker.
func (s SSML) OutputSpeech() OutputSpeech {
	return OutputSpeech{Type: SpeechTypeSSML, SSML: string(s)}
}

// Speech is a structured speech value with an explicit kind. Any kind other
// than SSML is treated as plain text.
type Speech struct {
	Type   SpeechType
	Speech string
}

// OutputSpeech implements Speaker.
func (s Speech) OutputSpeech() OutputSpeech {
	if s.Type == SpeechTypeSSML {
		return OutputSpeech{Type: SpeechTypeSSML, SSML: s.Speech}
	}
	return OutputSpeech{Type: SpeechTypePlainText, Text: s.Speech}
}

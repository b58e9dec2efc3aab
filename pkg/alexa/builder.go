package alexa

import "maps"

// Options is the full set of inputs for one envelope.
type Options struct {
	Session          *Session
	Output           Speaker
	Reprompt         Speaker
	CardTitle        string
	CardContent      string
	ShouldEndSession bool
}

// BuildEnvelope constructs an Envelope from opts. It has no side effects:
// identical options always produce identical envelopes.
func BuildEnvelope(opts Options) Envelope {
	body := ResponseBody{
		OutputSpeech:     speechOf(opts.Output),
		ShouldEndSession: opts.ShouldEndSession,
	}

	if opts.Reprompt != nil {
		body.Reprompt = &Reprompt{OutputSpeech: speechOf(opts.Reprompt)}
	}

	if opts.CardTitle != "" && opts.CardContent != "" {
		body.Card = &Card{
			Type:    CardTypeSimple,
			Title:   opts.CardTitle,
			Content: opts.CardContent,
		}
	}

	env := Envelope{
		Version:  Version,
		Response: body,
	}

	// Snapshot so later handler mutations do not leak into an emitted envelope.
	if opts.Session != nil && len(opts.Session.Attributes) > 0 {
		env.SessionAttributes = maps.Clone(opts.Session.Attributes)
	}

	return env
}

func speechOf(s Speaker) OutputSpeech {
	if s == nil {
		return OutputSpeech{Type: SpeechTypePlainText}
	}
	return s.OutputSpeech()
}

// ResponseBuilder emits the envelope for a single event. It is bound to the
// event's session and records only the first response built through it.
type ResponseBuilder struct {
	session  *Session
	envelope *Envelope
}

// NewResponseBuilder returns a builder bound to session.
func NewResponseBuilder(session *Session) *ResponseBuilder {
	return &ResponseBuilder{session: session}
}

// Tell ends the session after speaking output.
func (b *ResponseBuilder) Tell(output Speaker) {
	b.emit(Options{
		Session:          b.session,
		Output:           output,
		ShouldEndSession: true,
	})
}

// TellWithCard is Tell plus a simple card.
func (b *ResponseBuilder) TellWithCard(output Speaker, cardTitle, cardContent string) {
	b.emit(Options{
		Session:          b.session,
		Output:           output,
		CardTitle:        cardTitle,
		CardContent:      cardContent,
		ShouldEndSession: true,
	})
}

// Ask speaks output and keeps the session open, re-prompting with reprompt.
func (b *ResponseBuilder) Ask(output, reprompt Speaker) {
	b.emit(Options{
		Session:          b.session,
		Output:           output,
		Reprompt:         reprompt,
		ShouldEndSession: false,
	})
}

// AskWithCard is Ask plus a simple card.
func (b *ResponseBuilder) AskWithCard(output, reprompt Speaker, cardTitle, cardContent string) {
	b.emit(Options{
		Session:          b.session,
		Output:           output,
		Reprompt:         reprompt,
		CardTitle:        cardTitle,
		CardContent:      cardContent,
		ShouldEndSession: false,
	})
}

// Envelope returns the emitted envelope and whether one was emitted.
func (b *ResponseBuilder) Envelope() (*Envelope, bool) {
	return b.envelope, b.envelope != nil
}

func (b *ResponseBuilder) emit(opts Options) {
	if b.envelope != nil {
		return
	}
	env := BuildEnvelope(opts)
	b.envelope = &env
}

package alexa

import (
	"encoding/json"
	"strings"
)

// Event is the inbound request envelope delivered by the host.
type Event struct {
	Version string          `json:"version,omitempty"`
	Session *Session        `json:"session"`
	Request *Request        `json:"request"`
	Context json.RawMessage `json:"context,omitempty"`
}

// Session carries per-conversation state supplied by the host.
type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId,omitempty"`
	Application Application    `json:"application"`
	User        User           `json:"user"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

// Application identifies the skill the event was sent to.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// User identifies the account that spoke to the skill.
type User struct {
	UserID      string `json:"userId,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Request is a tagged union over RequestType. Intent is set only for
// IntentRequest; Reason and Error only for SessionEndedRequest.
type Request struct {
	Type      RequestType   `json:"type"`
	RequestID string        `json:"requestId,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
	Locale    string        `json:"locale,omitempty"`
	Intent    *Intent       `json:"intent,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Error     *RequestError `json:"error,omitempty"`
}

// RequestError describes why the host ended a session.
type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Intent is a recognized user goal with its slot values.
type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

// Slot is a named, optionally valued intent parameter.
type Slot struct {
	Name               string `json:"name"`
	Value              string `json:"value,omitempty"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// SlotValue returns the trimmed value of the named slot. A missing slot and a
// slot without a value both report ok=false.
func (i Intent) SlotValue(name string) (string, bool) {
	slot, ok := i.Slots[name]
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(slot.Value)
	if v == "" {
		return "", false
	}
	return v, true
}

// Envelope is the outbound response payload.
type Envelope struct {
	Version           string         `json:"version"`
	Response          ResponseBody   `json:"response"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
}

// ResponseBody is the spoken/visual part of an Envelope.
type ResponseBody struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Reprompt         *Reprompt    `json:"reprompt,omitempty"`
	Card             *Card        `json:"card,omitempty"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

// OutputSpeech holds either plain text or SSML, selected by Type.
type OutputSpeech struct {
	Type SpeechType `json:"type"`
	Text string     `json:"text,omitempty"`
	SSML string     `json:"ssml,omitempty"`
}

// MarshalJSON emits exactly one payload field, matching Type.
func (o OutputSpeech) MarshalJSON() ([]byte, error) {
	if o.Type == SpeechTypeSSML {
		return json.Marshal(struct {
			Type SpeechType `json:"type"`
			SSML string     `json:"ssml"`
		}{Type: o.Type, SSML: o.SSML})
	}
	return json.Marshal(struct {
		Type SpeechType `json:"type"`
		Text string     `json:"text"`
	}{Type: SpeechTypePlainText, Text: o.Text})
}

// Reprompt is replayed by the host when the user stays silent.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Card is a simple visual companion to the spoken response.
type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

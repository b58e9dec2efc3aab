package scalehelper

// Intent names
const (
	IntentGetScale = "GetScale"
	IntentStop     = "AMAZON.StopIntent"
	IntentCancel   = "AMAZON.CancelIntent"
	IntentHelp     = "AMAZON.HelpIntent"
)

// Slot names
const (
	SlotScale   = "Scale"
	SlotPattern = "Pattern"
)

// Speech
const (
	SpeechWelcome         = "Welcome to Scale Helper. Just name a scale, such as G Melodic Minor. Now, which scale do you want notes for?"
	SpeechWelcomeReprompt = "For instructions on what you can say, please say help me."
	SpeechNotesFormat     = "The notes are %s"
	SpeechUnknownFormat   = "I currently don't know the notes for %s. What else can I help with?"
	SpeechNotUnderstood   = "Sorry, I didn't understand that. Please try again."
	SpeechNameAScale      = "Name a scale"
	SpeechStop            = "See ya"
	SpeechCancel          = "Goodbye"
	SpeechHelp            = "Supported scales are major, natural minor, melodic minor, and harmonic minor. " +
		"For example, just say F melodic minor, or, you can say exit... Now, what can I help you with?"
	SpeechHelpReprompt = "If you want to hear the options again, just say Help."

	CardTitleFormat = "Notes for %s"
)

// Log prefixes
const (
	LogPrefix = "internal.scalehelper"
)

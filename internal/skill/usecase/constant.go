package usecase

// Log prefixes
const (
	LogPrefixExecute  = "internal.skill.usecase.Execute"
	LogPrefixHandle   = "internal.skill.usecase.Handle"
	LogPrefixDispatch = "internal.skill.usecase.dispatch"
)

// Handler stages reported in skill.HandlerError.
const (
	StageSessionStarted = "onSessionStarted"
	StageLaunch         = "onLaunch"
	StageIntent         = "onIntent"
	StageSessionEnded   = "onSessionEnded"
	StageDispatch       = "dispatch"
)

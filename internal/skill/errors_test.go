package skill_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-skill/internal/skill"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want skill.ErrorKind
	}{
		{"nil", nil, skill.KindUnknown},
		{"mismatch", fmt.Errorf("%w: got x", skill.ErrAuthorizationMismatch), skill.KindAuthorization},
		{"invalid", skill.ErrInvalidEvent, skill.KindInvalidEvent},
		{"request type", skill.ErrUnsupportedRequestType, skill.KindInvalidEvent},
		{"unimplemented", skill.ErrUnimplementedHook, skill.KindUnimplemented},
		{"intent", fmt.Errorf("%w = Foo", skill.ErrUnsupportedIntent), skill.KindUnsupportedIntent},
		{"handler", &skill.HandlerError{Stage: "onIntent", Err: errors.New("x")}, skill.KindHandler},
		{"no response", skill.ErrNoResponse, skill.KindHandler},
		{"sentinel inside handler error", &skill.HandlerError{Stage: "onIntent", Err: skill.ErrUnsupportedIntent}, skill.KindUnsupportedIntent},
		{"other", errors.New("x"), skill.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skill.KindOf(tt.err))
		})
	}
}

func TestHandlerError(t *testing.T) {
	inner := errors.New("db down")
	err := &skill.HandlerError{Stage: "onLaunch", Err: inner}
	assert.Equal(t, "onLaunch handler: db down", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestApplicationCheck(t *testing.T) {
	check := skill.RequireApplicationID("app-1")
	assert.True(t, check.Enabled())
	assert.NoError(t, check.Verify("app-1"))
	assert.ErrorIs(t, check.Verify("app-2"), skill.ErrAuthorizationMismatch)

	open := skill.AnyApplication()
	assert.False(t, open.Enabled())
	assert.NoError(t, open.Verify("whatever"))

	assert.ErrorIs(t, skill.Definition{}.Validate(), skill.ErrApplicationIDRequired)
	assert.NoError(t, skill.Definition{Application: open}.Validate())
}

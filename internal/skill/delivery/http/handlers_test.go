package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-skill/internal/skill"
	skillHTTP "voice-skill/internal/skill/delivery/http"
	"voice-skill/internal/skill/usecase"
	"voice-skill/pkg/alexa"
	"voice-skill/pkg/log"
	"voice-skill/pkg/response"
)

const appID = "amzn1.ask.skill.test"

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc, err := usecase.New(skill.Definition{
		Application: skill.RequireApplicationID(appID),
		OnLaunch: func(ctx context.Context, req *alexa.Request, session *alexa.Session, resp *alexa.ResponseBuilder) error {
			resp.Ask(alexa.PlainText("Welcome"), alexa.PlainText("Say help"))
			return nil
		},
		Intents: skill.IntentHandlers{
			"AMAZON.CancelIntent": func(ctx context.Context, intent alexa.Intent, session *alexa.Session, resp *alexa.ResponseBuilder) error {
				resp.Tell(alexa.PlainText("Goodbye"))
				return nil
			},
			"Broken": func(ctx context.Context, intent alexa.Intent, session *alexa.Session, resp *alexa.ResponseBuilder) error {
				return errors.New("lookup failed")
			},
		},
	}, log.NewNop())
	require.NoError(t, err)

	engine := gin.New()
	skillHTTP.RegisterRoutes(engine.Group(""), skillHTTP.New(log.NewNop(), uc))
	return engine
}

func post(t *testing.T, engine *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req, err := http.NewRequest(http.MethodPost, "/skill", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func event(reqType alexa.RequestType, intent string, id string) alexa.Event {
	ev := alexa.Event{
		Version: "1.0",
		Session: &alexa.Session{
			New:         true,
			SessionID:   "SessionId.1",
			Application: alexa.Application{ApplicationID: id},
		},
		Request: &alexa.Request{Type: reqType, RequestID: "req-1"},
	}
	if intent != "" {
		ev.Request.Intent = &alexa.Intent{Name: intent}
	}
	return ev
}

func TestHandleEvent(t *testing.T) {
	engine := newEngine(t)

	t.Run("launch", func(t *testing.T) {
		w := post(t, engine, event(alexa.RequestTypeLaunch, "", appID))
		require.Equal(t, http.StatusOK, w.Code)

		var env alexa.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "1.0", env.Version)
		assert.Equal(t, "Welcome", env.Response.OutputSpeech.Text)
		assert.False(t, env.Response.ShouldEndSession)
		require.NotNil(t, env.Response.Reprompt)
		assert.Equal(t, "Say help", env.Response.Reprompt.OutputSpeech.Text)
	})

	t.Run("intent", func(t *testing.T) {
		w := post(t, engine, event(alexa.RequestTypeIntent, "AMAZON.CancelIntent", appID))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"version":"1.0","response":{"outputSpeech":{"type":"PlainText","text":"Goodbye"},"shouldEndSession":true}}`,
			w.Body.String())
	})

	t.Run("session ended", func(t *testing.T) {
		w := post(t, engine, event(alexa.RequestTypeSessionEnded, "", appID))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("application mismatch", func(t *testing.T) {
		w := post(t, engine, event(alexa.RequestTypeLaunch, "", "amzn1.ask.skill.other"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unsupported intent", func(t *testing.T) {
		w := post(t, engine, event(alexa.RequestTypeIntent, "Nope", appID))
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Message, "unsupported intent")
		assert.Equal(t, map[string]any{"kind": "unsupported_intent"}, resp.Data)
	})

	t.Run("handler error", func(t *testing.T) {
		w := post(t, engine, event(alexa.RequestTypeIntent, "Broken", appID))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(t, engine, "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

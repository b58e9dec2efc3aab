package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-skill/internal/middleware"
	"voice-skill/internal/scalehelper"
	"voice-skill/internal/skill"
	skillHTTP "voice-skill/internal/skill/delivery/http"
	"voice-skill/internal/skill/usecase"
	"voice-skill/pkg/alexa"
	"voice-skill/pkg/log"
	"voice-skill/pkg/response"
)

func newTestServer(t *testing.T, mwCfg middleware.Config, trustedProxies ...string) *HTTPServer {
	t.Helper()
	l := log.NewNop()

	def := scalehelper.New(l, skill.RequireApplicationID("amzn1.ask.skill.test"), scalehelper.NewCatalog(map[string]string{
		"c major": "c, d, e, f, g, a, b",
	}))
	uc, err := usecase.New(def, l)
	require.NoError(t, err)

	srv, err := New(l, Config{
		Logger:         l,
		Port:           8080,
		Mode:           "test",
		Environment:    "test",
		TrustedProxies: trustedProxies,
		Middleware:     middleware.New(l, mwCfg),
		SkillHandler:   skillHTTP.New(l, uc),
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Mode: "test", Port: 8080})
	assert.EqualError(t, err, "skill handler is required")

	_, err = New(l, Config{Mode: "test"})
	assert.EqualError(t, err, "port is required")
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t, middleware.Config{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, response.MessageSuccess, resp.Message)
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestSkillRoute(t *testing.T) {
	srv := newTestServer(t, middleware.Config{})

	body, _ := json.Marshal(alexa.Event{
		Session: &alexa.Session{New: true, Application: alexa.Application{ApplicationID: "amzn1.ask.skill.test"}},
		Request: &alexa.Request{
			Type: alexa.RequestTypeIntent,
			Intent: &alexa.Intent{Name: scalehelper.IntentGetScale, Slots: map[string]alexa.Slot{
				scalehelper.SlotScale:   {Name: scalehelper.SlotScale, Value: "C"},
				scalehelper.SlotPattern: {Name: scalehelper.SlotPattern, Value: "major"},
			}},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/skill", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var env alexa.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "The notes are c, d, e, f, g, a, b", env.Response.OutputSpeech.Text)
	require.NotNil(t, env.Response.Card)
	assert.Equal(t, "C, D, E, F, G, A, B", env.Response.Card.Content)
}

func TestSkillRoute_IPGuard(t *testing.T) {
	srv := newTestServer(t, middleware.Config{AllowedIPs: []string{"10.0.0.0/8"}})

	req := httptest.NewRequest(http.MethodPost, "/skill", bytes.NewReader([]byte(`{}`)))
	req.RemoteAddr = "192.168.0.5:4000"
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func postSkill(srv *HTTPServer, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/skill", bytes.NewReader([]byte(`{}`)))
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w.Code
}

func TestSkillRoute_IPGuardIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	srv := newTestServer(t, middleware.Config{AllowedIPs: []string{"10.0.0.0/8"}})

	assert.Equal(t, http.StatusForbidden, postSkill(srv, "203.0.113.9:4000", "10.1.2.3"))
}

func TestSkillRoute_IPGuardTrustedProxy(t *testing.T) {
	srv := newTestServer(t, middleware.Config{AllowedIPs: []string{"10.0.0.0/8"}}, "127.0.0.1")

	assert.NotEqual(t, http.StatusForbidden, postSkill(srv, "127.0.0.1:4000", "10.1.2.3"))
	assert.Equal(t, http.StatusForbidden, postSkill(srv, "127.0.0.1:4000", "203.0.113.9"))
}

func TestSkillRoute_RateLimitIgnoresRotatingForwardedFor(t *testing.T) {
	// 60/min -> burst 6 per client.
	srv := newTestServer(t, middleware.Config{RateLimitPerMin: 60})

	for i := 0; i < 6; i++ {
		code := postSkill(srv, "203.0.113.9:4000", fmt.Sprintf("10.0.0.%d", i+1))
		require.NotEqual(t, http.StatusTooManyRequests, code, "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, postSkill(srv, "203.0.113.9:4000", "10.0.0.99"))
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	l := log.NewNop()
	uc, err := usecase.New(scalehelper.New(l, skill.AnyApplication(), nil), l)
	require.NoError(t, err)

	_, err = New(l, Config{
		Logger:         l,
		Port:           8080,
		Mode:           "test",
		TrustedProxies: []string{"not-a-proxy"},
		SkillHandler:   skillHTTP.New(l, uc),
	})
	assert.Error(t, err)
}

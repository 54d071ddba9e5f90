package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/fundflow"
	fhttp "github.com/aretw0/fundflow/pkg/adapters/http"
	"github.com/aretw0/fundflow/pkg/adapters/memory"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	rec := memory.NewRecorder()
	engine, err := fundflow.New(rec)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "fundflow_test_total", Help: "test"}))

	srv := fhttp.NewServer(engine, rec, fhttp.WithGatherer(reg))
	require.NoError(t, srv.Start(context.Background()))

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getConversation(t *testing.T, ts *httptest.Server) fhttp.Conversation {
	t.Helper()
	resp, err := http.Get(ts.URL + "/api/conversation")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var c fhttp.Conversation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&c))
	return c
}

func post(t *testing.T, ts *httptest.Server, path, body string) (*http.Response, fhttp.Conversation) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var c fhttp.Conversation
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&c))
	}
	return resp, c
}

func TestServer_Conversation(t *testing.T) {
	ts := newServer(t)

	c := getConversation(t, ts)
	assert.Equal(t, domain.StateStart, c.State)
	assert.Equal(t, 10, c.Progress)
	assert.NotEmpty(t, c.SessionID)
	require.Len(t, c.Choices, 1)
	assert.Equal(t, "Yes, let's do it", c.Choices[0].Label)
	assert.Nil(t, c.Input)
}

func TestServer_FullInterview(t *testing.T) {
	ts := newServer(t)

	_, c := post(t, ts, "/api/events", `{"type":"button","index":1}`)
	assert.Equal(t, domain.StateAskGoal, c.State)
	require.NotNil(t, c.Input)
	assert.Equal(t, domain.AnswerGoal, c.Input.Key)

	for _, answer := range []string{"open a new branch", "6", "100000", "60000", "50000"} {
		resp, _ := post(t, ts, "/api/events", `{"type":"input","value":"`+answer+`"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	_, c = post(t, ts, "/api/events", `{"type":"button","index":1}`)
	assert.Equal(t, domain.StatePlanResult, c.State)
	assert.Equal(t, 100, c.Progress)
	require.Len(t, c.Choices, 3)

	var plan string
	for _, m := range c.Messages {
		if m.Markdown {
			plan = m.Text
		}
	}
	assert.Contains(t, plan, "₹150,000")
	assert.Contains(t, plan, "ACHIEVABLE")
}

func TestServer_EventErrors(t *testing.T) {
	ts := newServer(t)

	resp, _ := post(t, ts, "/api/events", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(t, ts, "/api/events", `{"type":"button","index":7}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = post(t, ts, "/api/events", `{"type":"input","value":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "start has no input")

	assert.Equal(t, domain.StateStart, getConversation(t, ts).State)
}

func TestServer_Restart(t *testing.T) {
	ts := newServer(t)

	post(t, ts, "/api/events", `{"type":"button","index":1}`)
	before := getConversation(t, ts)
	require.Equal(t, domain.StateAskGoal, before.State)

	resp, c := post(t, ts, "/api/restart", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.StateStart, c.State)
	assert.NotEqual(t, before.SessionID, c.SessionID)
	assert.Len(t, c.Messages, 1, "transcript restarts with the greeting")
}

func TestServer_EmptyAnswerIsReported(t *testing.T) {
	ts := newServer(t)

	_, before := post(t, ts, "/api/events", `{"type":"button","index":1}`)
	require.Nil(t, before.Validation)

	resp, c := post(t, ts, "/api/events", `{"type":"input","value":"   "}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.StateAskGoal, c.State)
	assert.Equal(t, before.Progress, c.Progress)
	assert.Len(t, c.Messages, len(before.Messages))
	require.NotNil(t, c.Validation)
	assert.Equal(t, domain.AnswerGoal, c.Validation.Key)
	assert.Equal(t, domain.StateAskGoal, c.Validation.State)
	assert.Contains(t, c.Validation.Error, "empty")
	require.NotNil(t, c.Input, "the input is offered again")

	assert.NotNil(t, getConversation(t, ts).Validation)

	_, c = post(t, ts, "/api/events", `{"type":"input","value":"open a new branch"}`)
	assert.Equal(t, domain.StateAskTimeline, c.State)
	assert.Nil(t, c.Validation)
}

func TestServer_StartOverButtonResetsTranscript(t *testing.T) {
	ts := newServer(t)
	first := getConversation(t, ts)

	post(t, ts, "/api/events", `{"type":"button","index":1}`)
	for _, answer := range []string{"open a new branch", "6", "100000", "60000", "50000"} {
		post(t, ts, "/api/events", `{"type":"input","value":"`+answer+`"}`)
	}
	_, c := post(t, ts, "/api/events", `{"type":"button","index":1}`)
	require.Equal(t, domain.StatePlanResult, c.State)
	require.Equal(t, "Start Over", c.Choices[2].Label)

	_, c = post(t, ts, "/api/events", `{"type":"button","index":3}`)
	assert.Equal(t, domain.StateStart, c.State)
	assert.NotEqual(t, first.SessionID, c.SessionID)
	assert.Equal(t, first.Messages, c.Messages, "only the greeting of the new session")
	assert.Equal(t, first.Messages, getConversation(t, ts).Messages)
}

func TestServer_Graph(t *testing.T) {
	ts := newServer(t)

	resp, err := http.Get(ts.URL + "/api/graph")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "graph TD"))
	assert.Contains(t, string(body), "ai_planner")
}

func TestServer_HealthAndMetrics(t *testing.T) {
	ts := newServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "fundflow_test_total")
}

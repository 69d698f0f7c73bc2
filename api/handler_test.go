package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/josefdc/Algoritmos-Despacho/internal/assistant"
	"github.com/josefdc/Algoritmos-Despacho/internal/requests"
	"github.com/josefdc/Algoritmos-Despacho/internal/responses"
	"github.com/josefdc/Algoritmos-Despacho/internal/service"
	"github.com/josefdc/Algoritmos-Despacho/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryBody = `{"processes":[
	{"process_id":"P1","arrival_time":0,"burst_time":3,"priority":2},
	{"process_id":"P2","arrival_time":1,"burst_time":5,"priority":1},
	{"process_id":"P3","arrival_time":2,"burst_time":2,"priority":3}
]}`

type stubAsker struct{}

func (stubAsker) Ask(_ context.Context, contextText, question string) (string, error) {
	return "answer to " + question, nil
}

type failingAsker struct{}

func (failingAsker) Ask(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("%w: status 500", assistant.ErrUpstream)
}

func newTestApp(asker service.Asker) *fiber.App {
	app := fiber.New()
	Register(app, NewSchedulerHandlerImpl(service.New(store.NewMemory(), asker, requests.PriorityDefaults{})))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	response, err := app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, data
}

func TestSchedulerHandler_Policies(t *testing.T) {
	testCases := []struct {
		target      string
		expectOrder []string
	}{
		{target: "/api/v1/fifo", expectOrder: []string{"P1", "P2", "P3"}},
		{target: "/api/v1/sjf", expectOrder: []string{"P1", "P3", "P2"}},
		{target: "/api/v1/priority", expectOrder: []string{"P1", "P2", "P3"}},
	}

	app := newTestApp(nil)
	for _, tc := range testCases {
		t.Run(tc.target, func(t *testing.T) {
			status, data := do(t, app, http.MethodPost, tc.target, registryBody)
			require.Equal(t, http.StatusOK, status, string(data))

			var response responses.SingleScheduleResponse
			require.NoError(t, json.Unmarshal(data, &response))
			assert.NotEmpty(t, response.RunId)
			var order []string
			for _, item := range response.Timeline {
				order = append(order, item.ProcessID)
			}
			assert.Equal(t, tc.expectOrder, order)
			assert.Equal(t, 10, response.TotalTime)
		})
	}
}

func TestSchedulerHandler_Simulate(t *testing.T) {
	app := newTestApp(nil)
	body := strings.Replace(registryBody, `{"processes"`, `{"algorithm":"sjf","processes"`, 1)
	status, data := do(t, app, http.MethodPost, "/api/v1/simulate", body)
	require.Equal(t, http.StatusOK, status, string(data))

	var response responses.SingleScheduleResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, "SJF", response.Algorithm)
}

func TestSchedulerHandler_AllAndRuns(t *testing.T) {
	app := newTestApp(nil)
	status, data := do(t, app, http.MethodPost, "/api/v1/all", registryBody)
	require.Equal(t, http.StatusOK, status, string(data))

	var all responses.AllSchedulesResponse
	require.NoError(t, json.Unmarshal(data, &all))
	require.Len(t, all.Schedules, 3)
	require.NotEmpty(t, all.RunId)

	status, data = do(t, app, http.MethodGet, "/api/v1/runs/"+all.RunId, "")
	require.Equal(t, http.StatusOK, status, string(data))
	var run store.Run
	require.NoError(t, json.Unmarshal(data, &run))
	assert.Equal(t, all.RunId, run.ID)
	assert.Len(t, run.Processes, 3)

	status, data = do(t, app, http.MethodGet, "/api/v1/runs", "")
	require.Equal(t, http.StatusOK, status, string(data))
	var runs []store.Run
	require.NoError(t, json.Unmarshal(data, &runs))
	assert.Len(t, runs, 1)
}

func TestSchedulerHandler_Ask(t *testing.T) {
	body := `{"algorithm":"FIFO","question":"Who waits most?","processes":[{"process_id":"A","arrival_time":0,"burst_time":2}]}`

	status, data := do(t, newTestApp(stubAsker{}), http.MethodPost, "/api/v1/ask", body)
	require.Equal(t, http.StatusOK, status, string(data))
	var response responses.AskResponse
	require.NoError(t, json.Unmarshal(data, &response))
	assert.Equal(t, "answer to Who waits most?", response.Answer)

	status, _ = do(t, newTestApp(nil), http.MethodPost, "/api/v1/ask", body)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestSchedulerHandler_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		target string
		body   string
		expect int
	}{
		{name: "malformed body", method: http.MethodPost, target: "/api/v1/fifo", body: `{"processes":`, expect: http.StatusBadRequest},
		{name: "empty registry", method: http.MethodPost, target: "/api/v1/sjf", body: `{"processes":[]}`, expect: http.StatusBadRequest},
		{name: "invalid burst", method: http.MethodPost, target: "/api/v1/priority", body: `{"processes":[{"process_id":"A","arrival_time":0,"burst_time":0}]}`, expect: http.StatusBadRequest},
		{name: "unknown algorithm", method: http.MethodPost, target: "/api/v1/simulate", body: `{"algorithm":"RR","processes":[{"process_id":"A","burst_time":1}]}`, expect: http.StatusBadRequest},
		{name: "unknown run", method: http.MethodGet, target: "/api/v1/runs/missing", expect: http.StatusNotFound},
	}

	app := newTestApp(nil)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, data := do(t, app, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.expect, status, string(data))
			assert.Contains(t, string(data), `"error"`)
		})
	}
}

func TestSchedulerHandler_AskUpstreamFailure(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	body := `{"algorithm":"FIFO","question":"Who waits most?","processes":[{"process_id":"A","arrival_time":0,"burst_time":2}]}`
	status, data := do(t, newTestApp(failingAsker{}), http.MethodPost, "/api/v1/ask", body)
	assert.Equal(t, http.StatusBadGateway, status, string(data))
	assert.Contains(t, buf.String(), "POST /api/v1/ask: assistant failed")
	assert.Contains(t, buf.String(), "status 500")
}

package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.SchedulerConfig{
		RoundRobinTimeQuantum: 2,
		AllowOrigins:          "*",
		MetricsEnabled:        true,
		MaxProcesses:          5,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApp(cfg, prometheus.NewRegistry(), logger)
}

func post(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

const fcfsBody = `{"processes": [
	{"arrival_time": 0, "burst_time": 5},
	{"arrival_time": 1, "burst_time": 3},
	{"arrival_time": 2, "burst_time": 8}
]}`

func TestFirstComeFirstServeEndpoint(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/api/v1/fcfs", "/fcfs"} {
		status, body := post(t, app, path, fcfsBody)
		require.Equal(t, fiber.StatusOK, status, string(body))

		var r responses.ScheduleResponse
		require.NoError(t, json.Unmarshal(body, &r))
		assert.Equal(t, "fcfs", r.Algorithm)
		assert.Equal(t, []int{5, 8, 16}, r.CompletionTime)
		assert.Equal(t, []int{0, 4, 6}, r.WaitingTime)
		assert.Equal(t, []int{0, 4, 6}, r.ResponseTime)
		assert.InDelta(t, 10.0/3, r.AverageWaitingTime, 1e-9)
		assert.Len(t, r.GanttChart, 3)
	}
}

func TestRoundRobinEndpoint(t *testing.T) {
	app := newTestApp(t)
	body := `{"quantum": 2, "processes": [
		{"arrivalTime": 0, "burstTime": 5},
		{"arrivalTime": 1, "burstTime": 3},
		{"arrivalTime": 2, "burstTime": 1}
	]}`
	status, data := post(t, app, "/round_robin", body)
	require.Equal(t, fiber.StatusOK, status, string(data))

	var r responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, []int{9, 8, 5}, r.CompletionTime)
	assert.Equal(t, []int{9, 7, 3}, r.TurnAroundTime)
	assert.Equal(t, []int{4, 4, 2}, r.WaitingTime)
}

func TestShortestJobEndpoints(t *testing.T) {
	app := newTestApp(t)
	body := `{"processes": [
		{"pid": 1, "arrival": 0, "burst": 8},
		{"pid": 2, "arrival": 1, "burst": 4},
		{"pid": 3, "arrival": 2, "burst": 9},
		{"pid": 4, "arrival": 3, "burst": 5}
	]}`

	status, data := post(t, app, "/api/v1/srtf", body)
	require.Equal(t, fiber.StatusOK, status, string(data))
	var srtf responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &srtf))
	assert.Equal(t, []int{17, 5, 26, 10}, srtf.CompletionTime)

	status, data = post(t, app, "/sjf_non_preemptive", body)
	require.Equal(t, fiber.StatusOK, status, string(data))
	var sjf responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &sjf))
	assert.Equal(t, []int{8, 12, 26, 17}, sjf.CompletionTime)
	assert.Equal(t, []responses.GanttEntry{
		{ProcessId: 1, Start: 0, End: 8},
		{ProcessId: 2, Start: 8, End: 12},
		{ProcessId: 4, Start: 12, End: 17},
		{ProcessId: 3, Start: 17, End: 26},
	}, sjf.GanttChart)
}

func TestZeroBasedPidsAndExtraFields(t *testing.T) {
	app := newTestApp(t)
	body := `{"processes": [
		{"pid": 0, "name": "init", "color": "#f00", "arrival_time": 0, "burst_time": 2},
		{"pid": 1, "name": "shell", "arrival_time": 1, "burst_time": 3}
	]}`
	status, data := post(t, app, "/api/v1/fcfs", body)
	require.Equal(t, fiber.StatusOK, status, string(data))

	var r responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, []int{2, 5}, r.CompletionTime)
	assert.Equal(t, []responses.GanttEntry{
		{ProcessId: 0, Start: 0, End: 2},
		{ProcessId: 1, Start: 2, End: 5},
	}, r.GanttChart)
}

func TestPriorityEndpoint(t *testing.T) {
	app := newTestApp(t)
	body := `{"processes": [
		{"arrival_time": 0, "burst_time": 4, "priority": 2},
		{"arrival_time": 1, "burst_time": 3, "priority": 1},
		{"arrival_time": 2, "burst_time": 1, "priority": 0}
	]}`
	status, data := post(t, app, "/api/v1/priority", body)
	require.Equal(t, fiber.StatusOK, status, string(data))

	var r responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, []int{4, 8, 5}, r.CompletionTime)
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	app := newTestApp(t)
	status, data := post(t, app, "/api/v1/all", fcfsBody)
	require.Equal(t, fiber.StatusOK, status, string(data))

	var r map[string]responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Len(t, r, 5)
	for _, name := range []string{"fcfs", "sjf", "srtf", "rr", "priority"} {
		assert.Contains(t, r, name)
	}
	assert.Equal(t, []int{5, 8, 16}, r["fcfs"].CompletionTime)
}

func TestEndpointErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		kind string
	}{
		{"empty processes", "/api/v1/fcfs", `{"processes": []}`, "MissingInput"},
		{"malformed json", "/api/v1/fcfs", `{"processes": [`, "InvalidInput"},
		{"fractional burst", "/api/v1/srtf", `{"processes": [{"arrival_time": 0, "burst_time": 1.5}]}`, "InvalidInput"},
		{"missing priority", "/api/v1/priority", `{"processes": [{"arrival_time": 0, "burst_time": 1}]}`, "InvalidInput"},
		{"missing quantum", "/api/v1/rr", `{"processes": [{"arrival_time": 0, "burst_time": 1}]}`, "MissingInput"},
		{"zero quantum", "/api/v1/rr", `{"quantum": 0, "processes": [{"arrival_time": 0, "burst_time": 1}]}`, "InvalidParameter"},
		{"fractional quantum", "/api/v1/rr", `{"quantum": 1.5, "processes": [{"arrival_time": 0, "burst_time": 1}]}`, "InvalidParameter"},
		{"string pid", "/api/v1/sjf", `{"processes": [{"pid": "P1", "arrival_time": 0, "burst_time": 1}]}`, "InvalidInput"},
		{"arrival overflow", "/api/v1/fcfs", `{"processes": [{"arrival_time": 9223372036854775000, "burst_time": 5}]}`, "InvalidInput"},
		{"duplicate pid", "/api/v1/sjf", `{"processes": [{"pid": 1, "arrival_time": 0, "burst_time": 1}, {"pid": 1, "arrival_time": 0, "burst_time": 1}]}`, "InvalidInput"},
		{"too many processes", "/api/v1/fcfs", `{"processes": [` + strings.Repeat(`{"arrival_time": 0, "burst_time": 1},`, 5) + `{"arrival_time": 0, "burst_time": 1}]}`, "InvalidInput"},
	}
	app := newTestApp(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := post(t, app, tt.path, tt.body)
			require.Equal(t, fiber.StatusBadRequest, status, string(data))

			var r responses.ErrorResponse
			require.NoError(t, json.Unmarshal(data, &r))
			assert.Equal(t, tt.kind, r.Kind)
			assert.NotEmpty(t, r.Error)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	status, _ := post(t, app, "/api/v1/fcfs", fcfsBody)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = post(t, app, "/api/v1/rr", fcfsBody)
	require.Equal(t, fiber.StatusBadRequest, status)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `cpu_scheduler_requests_total{algorithm="fcfs",outcome="ok"} 1`)
	assert.Contains(t, out, `cpu_scheduler_requests_total{algorithm="rr",outcome="MissingInput"} 1`)
	assert.Contains(t, out, "cpu_scheduler_simulated_total_time_bucket")
}

func TestMetricsDisabled(t *testing.T) {
	cfg := &config.SchedulerConfig{AllowOrigins: "*", RoundRobinTimeQuantum: 2}
	app := NewApp(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	status, _ := post(t, app, "/api/v1/fcfs", fcfsBody)
	require.Equal(t, fiber.StatusOK, status)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

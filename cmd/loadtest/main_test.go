package main

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saborcriollo/ordering/internal/restapi"
	"github.com/saborcriollo/ordering/internal/session"
	"github.com/saborcriollo/ordering/internal/stubapi"
)

func TestParseMode(t *testing.T) {
	mode, err := parseMode("create")
	require.NoError(t, err)
	assert.Equal(t, modeCreate, mode)

	mode, err = parseMode(" create-pay ")
	require.NoError(t, err)
	assert.Equal(t, modeCreatePay, mode)

	_, err = parseMode("create-pay-cancel")
	assert.Error(t, err)
}

func TestDispatchJobs_CountMode(t *testing.T) {
	jobs := make(chan int, 16)
	dispatchJobs(jobs, config{total: 5})

	var got []int
	for id := range jobs {
		got = append(got, id)
	}
	assert.Len(t, got, 5)
}

func TestDispatchJobs_DurationWithCap(t *testing.T) {
	jobs := make(chan int, 16)
	dispatchJobs(jobs, config{duration: time.Second, total: 3, totalSet: true})

	count := 0
	for range jobs {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestCollectorAndReport(t *testing.T) {
	col := newCollector()
	col.record("scenario", 10*time.Millisecond, codeOK)
	col.record("scenario", 30*time.Millisecond, codeError)
	col.record("CreateOrder", 5*time.Millisecond, codeOK)

	result := col.buildReport(time.Now(), time.Second)

	assert.EqualValues(t, 2, result.TotalScenarios)
	assert.EqualValues(t, 1, result.SuccessScenarios)
	assert.EqualValues(t, 1, result.FailedScenarios)
	assert.InDelta(t, 0.5, result.ErrorRate, 0.0001)
	assert.InDelta(t, 2.0, result.RPS, 0.0001)

	create, ok := result.Methods["CreateOrder"]
	require.True(t, ok)
	assert.EqualValues(t, 1, create.Calls)
	assert.EqualValues(t, 1, create.Codes[codeOK])
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.InDelta(t, 5.5, percentile(sorted, 50), 0.0001)
	assert.InDelta(t, 10, percentile(sorted, 100), 0.0001)
	assert.InDelta(t, 1, percentile(sorted, 0), 0.0001)
	assert.InDelta(t, 3.0, percentile([]float64{3}, 95), 0.0001)
}

func TestBuildLatencySummary_Empty(t *testing.T) {
	summary := buildLatencySummary(nil)
	assert.Zero(t, summary.Max)
	assert.Zero(t, summary.Avg)
}

func TestRatio(t *testing.T) {
	assert.Zero(t, ratio(1, 0))
	assert.InDelta(t, 0.25, ratio(1, 4), 0.0001)
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	require.NoError(t, writeJSONReport(path, report{TotalScenarios: 7}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 7, decoded.TotalScenarios)
}

func TestWriteJSONReport_RejectsBadPath(t *testing.T) {
	assert.Error(t, writeJSONReport(".", report{}))
	assert.Error(t, writeJSONReport("../outside.json", report{}))
}

func TestRunScenario_CreatePayAgainstStub(t *testing.T) {
	srv := httptest.NewServer(stubapi.NewServer(nil).Handler())
	defer srv.Close()

	client := restapi.NewClient(srv.URL+"/api", time.Second, session.NewStore(), nil)
	clients := scenarioClients{
		orders:   restapi.NewOrderClient(client),
		payments: restapi.NewPaymentClient(client),
	}
	cfg := config{
		mode:       modeCreatePay,
		menuID:     "7",
		qty:        2,
		priceMinor: 890,
		timeout:    time.Second,
	}
	col := newCollector()

	require.NoError(t, runScenario(clients, cfg, col))

	result := col.buildReport(time.Now(), time.Second)
	assert.EqualValues(t, 1, result.Methods["CreateOrder"].Success)
	assert.EqualValues(t, 1, result.Methods["ProcessPayment"].Success)
	assert.EqualValues(t, 1, result.SuccessScenarios)
}

func TestRunScenario_DeclineCounted(t *testing.T) {
	backend := stubapi.NewServer(nil)
	backend.DeclinePayments("card expired")
	srv := httptest.NewServer(backend.Handler())
	defer srv.Close()

	client := restapi.NewClient(srv.URL+"/api", time.Second, session.NewStore(), nil)
	clients := scenarioClients{
		orders:   restapi.NewOrderClient(client),
		payments: restapi.NewPaymentClient(client),
	}
	cfg := config{
		mode:       modeCreatePay,
		menuID:     "7",
		qty:        1,
		priceMinor: 890,
		timeout:    time.Second,
	}
	col := newCollector()

	require.Error(t, runScenario(clients, cfg, col))

	result := col.buildReport(time.Now(), time.Second)
	assert.EqualValues(t, 1, result.Methods["ProcessPayment"].Codes[codeDecline])
	assert.EqualValues(t, 1, result.FailedScenarios)
}

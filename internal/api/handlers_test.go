package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkows/sysscope/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubEngine serves canned snapshots to the handlers.
type stubEngine struct {
	host      models.HostInfo
	cores     []models.CpuCore
	memory    models.MemoryInfo
	disks     []models.DiskVolume
	diskErr   error
	networks  []models.NetworkInterface
	netErr    error
	processes []models.ProcessEntry
	procErr   error
	report    models.FullReport
}

func (s *stubEngine) Host(ctx context.Context) models.HostInfo  { return s.host }
func (s *stubEngine) CPU(ctx context.Context) []models.CpuCore  { return s.cores }
func (s *stubEngine) Memory(ctx context.Context) models.MemoryInfo {
	return s.memory
}
func (s *stubEngine) Disks(ctx context.Context) ([]models.DiskVolume, error) {
	return s.disks, s.diskErr
}
func (s *stubEngine) Networks(ctx context.Context) ([]models.NetworkInterface, error) {
	return s.networks, s.netErr
}
func (s *stubEngine) Processes(ctx context.Context) ([]models.ProcessEntry, error) {
	return s.processes, s.procErr
}
func (s *stubEngine) FullReport(ctx context.Context) models.FullReport {
	return s.report
}

func newTestRouter(engine Engine) *gin.Engine {
	h := NewHandlers(engine, zap.NewNop())
	return NewRouter(h, []string{"*"}, zap.NewNop())
}

func perform(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth_EnvelopeShape(t *testing.T) {
	w := perform(newTestRouter(&stubEngine{}), http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "API is running", env.Message)
	assert.NotNil(t, env.Data)

	// Timestamp is envelope-construction time in the documented layout.
	_, err := time.ParseInLocation(models.TimeFormat, env.Timestamp, time.Local)
	assert.NoError(t, err)
}

func TestSystem_DataRoundTrips(t *testing.T) {
	host := models.HostInfo{
		OS: "debian 12", Hostname: "web-1", KernelVersion: "6.1.0-18",
		Uptime: 3600, BootTime: 1719400000, CurrentUser: "deploy",
	}
	w := perform(newTestRouter(&stubEngine{host: host}), http.MethodGet, "/api/system", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Success bool            `json:"success"`
		Data    models.HostInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, host, env.Data)
}

func TestSearch_ChromeExample(t *testing.T) {
	engine := &stubEngine{processes: []models.ProcessEntry{
		{Pid: 1, Name: "chrome", Command: []string{"chrome"}},
		{Pid: 2, Name: "Chrome Helper", Command: []string{"chrome", "--helper"}},
		{Pid: 3, Name: "finder", Command: []string{"finder"}},
	}}
	body := []byte(`{"name": "chrome", "limit": 10}`)
	w := perform(newTestRouter(engine), http.MethodPost, "/api/processes/search", body)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		Data    []models.ProcessEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "found 2 processes", env.Message)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "chrome", env.Data[0].Name)
	assert.Equal(t, "Chrome Helper", env.Data[1].Name)
}

func TestSearch_EmptyBodyDefaults(t *testing.T) {
	engine := &stubEngine{processes: []models.ProcessEntry{
		{Pid: 1, Name: "a"}, {Pid: 2, Name: "b"},
	}}
	w := perform(newTestRouter(engine), http.MethodPost, "/api/processes/search", []byte(`{}`))
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Message string                `json:"message"`
		Data    []models.ProcessEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "found 2 processes", env.Message)
	assert.Len(t, env.Data, 2)
}

func TestSearch_MalformedBody(t *testing.T) {
	w := perform(newTestRouter(&stubEngine{}), http.MethodPost, "/api/processes/search",
		[]byte(`{"limit": "ten"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "false", string(raw["success"]))
	// data is absent, not null, on failure.
	_, present := raw["data"]
	assert.False(t, present)
}

func TestSearch_NegativeLimit(t *testing.T) {
	w := perform(newTestRouter(&stubEngine{}), http.MethodPost, "/api/processes/search",
		[]byte(`{"limit": -1}`))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
}

func TestProcesses_TotalCollectionFailure(t *testing.T) {
	engine := &stubEngine{procErr: errors.New("collecting process: permission denied")}
	w := perform(newTestRouter(engine), http.MethodGet, "/api/processes", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "permission denied")
	assert.Nil(t, env.Data)
}

func TestMemory_ShapeIsIdempotent(t *testing.T) {
	engine := &stubEngine{memory: models.MemoryInfo{
		TotalMemory: 100, UsedMemory: 25, FreeMemory: 75, MemoryPercent: 25,
	}}
	router := newTestRouter(engine)

	keys := func(w *httptest.ResponseRecorder) []string {
		var env struct {
			Data map[string]json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		out := make([]string, 0, len(env.Data))
		for k := range env.Data {
			out = append(out, k)
		}
		return out
	}

	first := perform(router, http.MethodGet, "/api/memory", nil)
	second := perform(router, http.MethodGet, "/api/memory", nil)
	assert.ElementsMatch(t, keys(first), keys(second))
	assert.ElementsMatch(t, keys(first), []string{
		"total_memory", "used_memory", "free_memory",
		"total_swap", "used_swap", "free_swap", "memory_percent",
	})
}

func TestFullReport_Wrapped(t *testing.T) {
	engine := &stubEngine{report: models.FullReport{
		System:    models.HostInfo{Hostname: "box"},
		CPU:       []models.CpuCore{},
		Disks:     []models.DiskVolume{},
		Networks:  []models.NetworkInterface{},
		Processes: []models.ProcessEntry{},
		Timestamp: "2026-08-23 12:00:00",
	}}
	w := perform(newTestRouter(engine), http.MethodGet, "/api/full-report", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Success bool              `json:"success"`
		Data    models.FullReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "box", env.Data.System.Hostname)
	assert.NotNil(t, env.Data.Processes)
}

func TestRequestID_HeaderSet(t *testing.T) {
	w := perform(newTestRouter(&stubEngine{}), http.MethodGet, "/api/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_CallerValuePreserved(t *testing.T) {
	router := newTestRouter(&stubEngine{})
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestIndex_ServesDocsPage(t *testing.T) {
	w := perform(newTestRouter(&stubEngine{}), http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/api/full-report")
}

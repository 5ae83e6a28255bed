package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mkows/sysscope/internal/models"
	"github.com/mkows/sysscope/internal/query"
)

// Engine is the slice of the collection engine the transport consumes.
type Engine interface {
	Host(ctx context.Context) models.HostInfo
	CPU(ctx context.Context) []models.CpuCore
	Memory(ctx context.Context) models.MemoryInfo
	Disks(ctx context.Context) ([]models.DiskVolume, error)
	Networks(ctx context.Context) ([]models.NetworkInterface, error)
	Processes(ctx context.Context) ([]models.ProcessEntry, error)
	FullReport(ctx context.Context) models.FullReport
}

// Handlers holds the HTTP handlers for all endpoints.
type Handlers struct {
	engine Engine
	logger *zap.Logger
}

// NewHandlers creates the handler set over the given engine.
func NewHandlers(engine Engine, logger *zap.Logger) *Handlers {
	return &Handlers{engine: engine, logger: logger}
}

// Index serves the static endpoint overview page.
func (h *Handlers) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

// Health reports that the API is up.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, ok("API is running", "sysscope is running"))
}

// System returns the host info snapshot.
func (h *Handlers) System(c *gin.Context) {
	info := h.engine.Host(c.Request.Context())
	c.JSON(http.StatusOK, ok("host info collected", info))
}

// CPU returns the per-core CPU snapshot.
func (h *Handlers) CPU(c *gin.Context) {
	cores := h.engine.CPU(c.Request.Context())
	c.JSON(http.StatusOK, ok("cpu info collected", cores))
}

// Memory returns the memory snapshot.
func (h *Handlers) Memory(c *gin.Context) {
	info := h.engine.Memory(c.Request.Context())
	c.JSON(http.StatusOK, ok("memory info collected", info))
}

// Disks returns the mounted volume snapshot.
func (h *Handlers) Disks(c *gin.Context) {
	volumes, err := h.engine.Disks(c.Request.Context())
	if err != nil {
		h.collectionFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, ok("disk info collected", volumes))
}

// Networks returns the network interface snapshot.
func (h *Handlers) Networks(c *gin.Context) {
	interfaces, err := h.engine.Networks(c.Request.Context())
	if err != nil {
		h.collectionFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, ok("network info collected", interfaces))
}

// Processes returns the uncapped process snapshot.
func (h *Handlers) Processes(c *gin.Context) {
	processes, err := h.engine.Processes(c.Request.Context())
	if err != nil {
		h.collectionFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, ok("process list collected", processes))
}

// searchRequest is the process-search input contract. Both fields are
// optional; nil means "no filter" and "default limit" respectively.
type searchRequest struct {
	Name  *string `json:"name"`
	Limit *int    `json:"limit"`
}

// SearchProcesses filters the process snapshot by name substring and
// truncates to the requested limit.
func (h *Handlers) SearchProcesses(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("invalid search request: "+err.Error()))
		return
	}
	if req.Limit != nil && *req.Limit < 0 {
		c.JSON(http.StatusBadRequest, fail("limit must be a non-negative integer"))
		return
	}

	snapshot, err := h.engine.Processes(c.Request.Context())
	if err != nil {
		h.collectionFailed(c, err)
		return
	}

	matched := query.Search(snapshot, req.Name, req.Limit)
	c.JSON(http.StatusOK, ok(fmt.Sprintf("found %d processes", len(matched)), matched))
}

// FullReport returns one coordinated snapshot across all collectors.
func (h *Handlers) FullReport(c *gin.Context) {
	report := h.engine.FullReport(c.Request.Context())
	c.JSON(http.StatusOK, ok("full report generated", report))
}

// collectionFailed renders a total-collection failure. Partial failures
// never reach here; they are absorbed as sentinel values by the engine.
func (h *Handlers) collectionFailed(c *gin.Context, err error) {
	h.logger.Error("Collection failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, fail(err.Error()))
}

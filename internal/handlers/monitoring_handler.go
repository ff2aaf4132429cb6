package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"rms-backend/internal/events"
	"rms-backend/pkg/utils"
)

// MonitoringHandler reports host and process stats for the admin console.
type MonitoringHandler struct {
	Hub     *events.Hub
	started time.Time
}

func NewMonitoringHandler(hub *events.Hub) *MonitoringHandler {
	return &MonitoringHandler{Hub: hub, started: time.Now()}
}

type systemStats struct {
	CPUPercent     float64 `json:"cpuPercent"`
	MemUsedPercent float64 `json:"memUsedPercent"`
	MemUsedMB      uint64  `json:"memUsedMb"`
	MemTotalMB     uint64  `json:"memTotalMb"`
	DiskPercent    float64 `json:"diskPercent"`
	Goroutines     int     `json:"goroutines"`
	WSClients      int     `json:"wsClients"`
	UptimeSeconds  int64   `json:"uptimeSeconds"`
}

func (h *MonitoringHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := systemStats{
		Goroutines:    runtime.NumGoroutine(),
		WSClients:     h.Hub.ClientCount(),
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemUsedPercent = vm.UsedPercent
		stats.MemUsedMB = vm.Used / 1024 / 1024
		stats.MemTotalMB = vm.Total / 1024 / 1024
	}
	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
	}

	utils.JSON(w, http.StatusOK, stats)
}

package monitoring

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"decor-backend/internal/health"
	"decor-backend/internal/ws"

	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"decor-backend/pkg/utils"
)

// MonitoringServer runs on a side port, separate from the API, so ops
// traffic never competes with client requests.
type MonitoringServer struct {
	checker   *health.HealthChecker
	hub       *ws.Hub
	port      int
	startedAt time.Time

	alerts    []Alert
	alertsMux sync.RWMutex
	nextAlert int
}

type Alert struct {
	ID        int       `json:"id"`
	Severity  string    `json:"severity"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Resolved  bool      `json:"resolved"`
}

type DashboardStats struct {
	StoreStatus      string  `json:"store_status"`
	StoreResponseMs  int64   `json:"store_response_ms"`
	ConnectedClients int     `json:"connected_clients"`
	ActiveAlerts     int     `json:"active_alerts"`
	CPUPercent       float64 `json:"cpu_percent"`
	MemoryPercent    float64 `json:"memory_percent"`
	DiskPercent      float64 `json:"disk_percent"`
	MemoryUsed       string  `json:"memory_used"`
	MemoryTotal      string  `json:"memory_total"`
	DiskUsed         string  `json:"disk_used"`
	DiskTotal        string  `json:"disk_total"`
	Uptime           string  `json:"uptime"`
}

func NewMonitoringServer(checker *health.HealthChecker, hub *ws.Hub, port int) *MonitoringServer {
	return &MonitoringServer{
		checker:   checker,
		hub:       hub,
		port:      port,
		startedAt: time.Now(),
		alerts:    make([]Alert, 0),
	}
}

func (ms *MonitoringServer) Start() {
	r := mux.NewRouter()

	r.HandleFunc("/api/stats", ms.getStats).Methods("GET")
	r.HandleFunc("/api/alerts", ms.getAlerts).Methods("GET")

	// Background health checker raises alerts on store degradation
	go ms.monitorHealth()

	addr := fmt.Sprintf(":%d", ms.port)
	log.Printf("[Monitoring] Server listening on %s", addr)
	go func() {
		if err := http.ListenAndServe(addr, r); err != nil {
			log.Printf("[Monitoring] Server stopped: %v", err)
		}
	}()
}

func (ms *MonitoringServer) getStats(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, ms.collectStats())
}

func (ms *MonitoringServer) getAlerts(w http.ResponseWriter, r *http.Request) {
	ms.alertsMux.RLock()
	defer ms.alertsMux.RUnlock()
	utils.JSON(w, http.StatusOK, ms.alerts)
}

func (ms *MonitoringServer) collectStats() DashboardStats {
	stats := DashboardStats{
		Uptime: formatUptime(int(time.Since(ms.startedAt).Seconds())),
	}

	storeHealth := ms.checker.CheckBasic()
	stats.StoreStatus = storeHealth.Status
	stats.StoreResponseMs = storeHealth.Store.ResponseTime

	if ms.hub != nil {
		stats.ConnectedClients = ms.hub.ClientCount()
	}

	ms.alertsMux.RLock()
	for _, a := range ms.alerts {
		if !a.Resolved {
			stats.ActiveAlerts++
		}
	}
	ms.alertsMux.RUnlock()

	cpuPercents, _ := cpu.Percent(time.Second, false)
	if len(cpuPercents) > 0 {
		stats.CPUPercent = cpuPercents[0]
	}

	if memStats, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = memStats.UsedPercent
		stats.MemoryUsed = formatBytes(memStats.Used)
		stats.MemoryTotal = formatBytes(memStats.Total)
	}

	if diskStats, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = diskStats.UsedPercent
		stats.DiskUsed = formatBytes(diskStats.Used)
		stats.DiskTotal = formatBytes(diskStats.Total)
	}

	return stats
}

func (ms *MonitoringServer) addAlert(severity, alertType, message string) {
	ms.alertsMux.Lock()
	defer ms.alertsMux.Unlock()

	ms.nextAlert++
	ms.alerts = append(ms.alerts, Alert{
		ID:        ms.nextAlert,
		Severity:  severity,
		Type:      alertType,
		Message:   message,
		Timestamp: time.Now(),
	})

	// Cap the in-memory alert history.
	if len(ms.alerts) > 100 {
		ms.alerts = ms.alerts[len(ms.alerts)-100:]
	}
}

func (ms *MonitoringServer) monitorHealth() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	wasHealthy := true
	for range ticker.C {
		status := ms.checker.CheckBasic()
		healthy := status.Status == "healthy"

		if wasHealthy && !healthy {
			ms.addAlert("critical", "store", "Store backend is unreachable")
			log.Println("[Monitoring] Store backend unhealthy")
		}
		if !wasHealthy && healthy {
			ms.addAlert("info", "store", "Store backend recovered")
			log.Println("[Monitoring] Store backend recovered")
		}
		wasHealthy = healthy
	}
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatUptime(seconds int) string {
	d := seconds / 86400
	h := (seconds % 86400) / 3600
	m := (seconds % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

package monitoring

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStats describe la máquina donde corre el benchmark. Los campos que
// gopsutil no logre leer quedan en cero.
type HostStats struct {
	// Process specific
	GOMAXPROCS int    `json:"gomaxprocs"`
	GoVersion  string `json:"go_version"`

	// System wide
	CPUModel      string  `json:"cpu_model"`
	LogicalCores  int     `json:"logical_cores"`
	PhysicalCores int     `json:"physical_cores"`
	TotalRAM      uint64  `json:"total_ram"`
	AvailableRAM  uint64  `json:"available_ram"`
	UsedRAMPct    float64 `json:"used_ram_percent"`
	Platform      string  `json:"platform"`
	KernelVersion string  `json:"kernel_version"`
}

func Snapshot() HostStats {
	stats := HostStats{
		GOMAXPROCS:   runtime.GOMAXPROCS(0),
		GoVersion:    runtime.Version(),
		LogicalCores: runtime.NumCPU(),
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		stats.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		stats.LogicalCores = n
	}
	if n, err := cpu.Counts(false); err == nil {
		stats.PhysicalCores = n
	}

	vMem, _ := mem.VirtualMemory()
	if vMem != nil {
		stats.TotalRAM = vMem.Total
		stats.AvailableRAM = vMem.Available
		stats.UsedRAMPct = vMem.UsedPercent
	}

	if info, err := host.Info(); err == nil && info != nil {
		stats.Platform = info.Platform + " " + info.PlatformVersion
		stats.KernelVersion = info.KernelVersion
	}
	return stats
}

// Fits indica si need bytes caben en la RAM disponible. Si no se pudo leer la
// memoria se asume que sí.
func (h HostStats) Fits(need uint64) bool {
	return h.AvailableRAM == 0 || need <= h.AvailableRAM
}

// Lines arma el encabezado legible del host.
func (h HostStats) Lines() []string {
	cpuModel := h.CPUModel
	if cpuModel == "" {
		cpuModel = "desconocido"
	}
	return []string{
		fmt.Sprintf("CPU: %s (%d lógicos, %d físicos)", cpuModel, h.LogicalCores, h.PhysicalCores),
		fmt.Sprintf("GOMAXPROCS = %d, %s", h.GOMAXPROCS, h.GoVersion),
		fmt.Sprintf("RAM: %s disponibles de %s (%.1f%% en uso)", HumanBytes(h.AvailableRAM), HumanBytes(h.TotalRAM), h.UsedRAMPct),
		fmt.Sprintf("Plataforma: %s, kernel %s", h.Platform, h.KernelVersion),
	}
}

func HumanBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

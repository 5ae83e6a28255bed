// Package models defines the snapshot data structures returned by the
// collectors. Every value is constructed fresh per request, serialized to
// JSON by the API layer, and never mutated after construction.
package models

// TimeFormat is the timestamp layout used in reports and response
// envelopes, rendered in the host's local time zone.
const TimeFormat = "2006-01-02 15:04:05"

// HostInfo holds static and slow-changing host facts.
// String fields fall back to "Unknown" when the OS cannot supply them;
// numeric fields fall back to 0. Fields are never absent.
type HostInfo struct {
	OS            string `json:"os"`
	Hostname      string `json:"hostname"`
	KernelVersion string `json:"kernel_version"`
	Uptime        uint64 `json:"uptime"`
	BootTime      uint64 `json:"boot_time"`
	CurrentUser   string `json:"current_user"`
}

// LoadAverage holds the three system load-average windows.
type LoadAverage struct {
	OneMin     float64 `json:"one_min"`
	FiveMin    float64 `json:"five_min"`
	FifteenMin float64 `json:"fifteen_min"`
}

// CpuCore describes one logical core. Cores (the physical core count) and
// LoadAvg are whole-machine values repeated on every entry of a snapshot.
type CpuCore struct {
	Name      string      `json:"name"`
	VendorID  string      `json:"vendor_id"`
	Brand     string      `json:"brand"`
	Frequency uint64      `json:"frequency"`
	Usage     float32     `json:"usage"`
	Cores     int         `json:"cores"`
	LoadAvg   LoadAverage `json:"load_average"`
}

// MemoryInfo holds physical and swap memory counters in bytes.
// MemoryPercent is 0 when TotalMemory is 0.
type MemoryInfo struct {
	TotalMemory   uint64  `json:"total_memory"`
	UsedMemory    uint64  `json:"used_memory"`
	FreeMemory    uint64  `json:"free_memory"`
	TotalSwap     uint64  `json:"total_swap"`
	UsedSwap      uint64  `json:"used_swap"`
	FreeSwap      uint64  `json:"free_swap"`
	MemoryPercent float32 `json:"memory_percent"`
}

// DiskVolume describes one mounted volume. UsedSpace is always derived as
// TotalSpace - AvailableSpace, never sampled independently.
type DiskVolume struct {
	Name           string `json:"name"`
	FileSystem     string `json:"file_system"`
	TotalSpace     uint64 `json:"total_space"`
	AvailableSpace uint64 `json:"available_space"`
	UsedSpace      uint64 `json:"used_space"`
	MountPoint     string `json:"mount_point"`
	IsRemovable    bool   `json:"is_removable"`
}

// NetworkInterface describes one network interface. ReceivedBytes,
// TransmittedBytes and the packet counters measure traffic since the
// previous sampler refresh; TotalReceived and TotalTransmitted are
// cumulative since boot. The two byte counters are distinct and must not
// be conflated.
type NetworkInterface struct {
	Name               string `json:"name"`
	MacAddress         string `json:"mac_address"`
	ReceivedBytes      uint64 `json:"received_bytes"`
	TransmittedBytes   uint64 `json:"transmitted_bytes"`
	PacketsReceived    uint64 `json:"packets_received"`
	PacketsTransmitted uint64 `json:"packets_transmitted"`
	TotalReceived      uint64 `json:"total_received"`
	TotalTransmitted   uint64 `json:"total_transmitted"`
}

// ProcessEntry describes one running process. Pid identifies a process
// within a single snapshot only; the OS reuses pids. Status is an
// OS-defined open string set, not a closed enum.
type ProcessEntry struct {
	Pid         uint32   `json:"pid"`
	Name        string   `json:"name"`
	CPUUsage    float32  `json:"cpu_usage"`
	MemoryUsage uint64   `json:"memory_usage"`
	Status      string   `json:"status"`
	RunTime     uint64   `json:"run_time"`
	Command     []string `json:"command"`
}

// FullReport is one coordinated snapshot across all collectors.
// Processes is capped to the first entries in OS enumeration order.
type FullReport struct {
	System    HostInfo           `json:"system"`
	CPU       []CpuCore          `json:"cpu"`
	Memory    MemoryInfo         `json:"memory"`
	Disks     []DiskVolume       `json:"disks"`
	Networks  []NetworkInterface `json:"networks"`
	Processes []ProcessEntry     `json:"processes"`
	Timestamp string             `json:"timestamp"`
}

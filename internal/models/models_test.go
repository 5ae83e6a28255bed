package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func sampleReport() FullReport {
	return FullReport{
		System: HostInfo{
			OS: "ubuntu 22.04", Hostname: "node-1", KernelVersion: "5.15.0",
			Uptime: 86400, BootTime: 1719300000, CurrentUser: "ops",
		},
		CPU: []CpuCore{{
			Name: "cpu0", VendorID: "GenuineIntel", Brand: "Intel(R) Xeon(R)",
			Frequency: 2400, Usage: 12.5, Cores: 4,
			LoadAvg: LoadAverage{OneMin: 0.5, FiveMin: 0.4, FifteenMin: 0.3},
		}},
		Memory: MemoryInfo{
			TotalMemory: 8 << 30, UsedMemory: 4 << 30, FreeMemory: 4 << 30,
			TotalSwap: 1 << 30, UsedSwap: 0, FreeSwap: 1 << 30, MemoryPercent: 50,
		},
		Disks: []DiskVolume{{
			Name: "/dev/sda1", FileSystem: "ext4", TotalSpace: 100, AvailableSpace: 40,
			UsedSpace: 60, MountPoint: "/", IsRemovable: false,
		}},
		Networks: []NetworkInterface{{
			Name: "eth0", MacAddress: "aa:bb:cc:dd:ee:ff",
			ReceivedBytes: 10, TransmittedBytes: 20, PacketsReceived: 1,
			PacketsTransmitted: 2, TotalReceived: 1000, TotalTransmitted: 2000,
		}},
		Processes: []ProcessEntry{{
			Pid: 42, Name: "nginx", CPUUsage: 1.5, MemoryUsage: 1 << 20,
			Status: "Running", RunTime: 3600, Command: []string{"nginx", "-g", "daemon off;"},
		}},
		Timestamp: "2026-08-23 12:00:00",
	}
}

func TestFullReport_JSONRoundTrip(t *testing.T) {
	original := sampleReport()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	var decoded FullReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestHostInfo_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(sampleReport().System)
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"os", "hostname", "kernel_version", "uptime", "boot_time", "current_user"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing field %q in %s", key, data)
		}
	}
}

func TestNetworkInterface_DeltaAndCumulativeDistinct(t *testing.T) {
	iface := sampleReport().Networks[0]
	data, err := json.Marshal(iface)
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]float64
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["received_bytes"] == fields["total_received"] {
		t.Error("delta and cumulative counters serialized to the same field")
	}
	if fields["received_bytes"] != 10 || fields["total_received"] != 1000 {
		t.Errorf("counters mixed up: %v", fields)
	}
}

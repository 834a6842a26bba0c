package tsplib

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// HostInfo describes the machine the process runs on.
func HostInfo() (SysInfo, error) {
	hostStat, err := host.Info()
	if err != nil {
		return SysInfo{}, fmt.Errorf("host info: %w", err)
	}
	cpuStat, err := cpu.Info()
	if err != nil {
		return SysInfo{}, fmt.Errorf("cpu info: %w", err)
	}
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return SysInfo{}, fmt.Errorf("memory info: %w", err)
	}
	var model string
	if len(cpuStat) > 0 {
		model = cpuStat[0].ModelName
	}
	return newSysInfo(hostStat.Platform, model, vmStat.Total), nil
}

func newSysInfo(platform, cpuModel string, totalRAM uint64) SysInfo {
	return SysInfo{Platform: platform, CPU: cpuModel, RAM: fmt.Sprintf("%d GB", totalRAM/1024/1024/1024)}
}

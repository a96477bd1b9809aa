// Package specs inspects the host hardware: processor model, installed
// memory and graphics adapter. Every lookup degrades to a placeholder
// instead of failing, so Inspect always returns a usable snapshot.
package specs

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"github.com/jamesainslie/gamescan/pkg/gamescan/logging"
	"github.com/jamesainslie/gamescan/pkg/gamescan/types"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Placeholder values reported when a lookup yields nothing.
const (
	UnknownCPU = "Unknown CPU"
	UnknownGPU = "Unknown GPU"
)

var logger = logging.Get("specs")

// errNoCPU is returned when the OS reports no processor entries.
var errNoCPU = errors.New("no cpu info reported")

// Inspector gathers SystemSpecs from the host.
// The zero value is not usable; call New.
type Inspector struct {
	// GOOS selects platform-specific GPU probes.
	GOOS string

	// CPUName returns the processor model name.
	CPUName func(ctx context.Context) (string, error)

	// TotalMemory returns installed physical memory in bytes.
	TotalMemory func(ctx context.Context) (uint64, error)

	// GPUProbes are tried in order by ResolveGPU.
	GPUProbes []GPUProbe
}

// New returns an Inspector backed by gopsutil and the default GPU probes.
func New() *Inspector {
	return &Inspector{
		GOOS:        runtime.GOOS,
		CPUName:     cpuModelName,
		TotalMemory: totalMemory,
		GPUProbes:   DefaultProbes(),
	}
}

// Inspect returns a fresh hardware snapshot. It never fails.
func (in *Inspector) Inspect(ctx context.Context) types.SystemSpecs {
	cpuName := UnknownCPU
	if in.CPUName != nil {
		name, err := in.CPUName(ctx)
		if err != nil {
			logger.Warn("cpu lookup failed", "err", err)
		} else if name = strings.TrimSpace(name); name != "" {
			cpuName = name
		}
	}

	var ramBytes uint64
	if in.TotalMemory != nil {
		total, err := in.TotalMemory(ctx)
		if err != nil {
			logger.Warn("memory lookup failed", "err", err)
		} else {
			ramBytes = total
		}
	}

	gpu := ResolveGPU(ctx, in.GOOS, in.GPUProbes)

	specs := types.SystemSpecs{
		CPU:      cpuName,
		RAMGB:    types.BytesToGB(ramBytes),
		RAMBytes: ramBytes,
		GPU:      gpu,
	}
	logger.Info("inspected system", "cpu", specs.CPU, "ram_gb", specs.RAMGB, "gpu", specs.GPU)

	return specs
}

func cpuModelName(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", errNoCPU
	}
	return infos[0].ModelName, nil
}

func totalMemory(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

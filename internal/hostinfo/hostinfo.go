// Package hostinfo describes the machine a benchmark runs on.
package hostinfo

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"roundtrip/internal/domain"
)

// Provider collects host details through gopsutil.
type Provider struct{}

// New creates a new host info provider.
func New() *Provider {
	return &Provider{}
}

// HostInfo returns OS, CPU and memory details. Missing CPU model or platform
// details are left empty; only a failure to count CPUs or read memory is an
// error.
func (p *Provider) HostInfo(ctx context.Context) (*domain.HostInfo, error) {
	info := &domain.HostInfo{OS: runtime.GOOS}

	if h, err := host.InfoWithContext(ctx); err == nil {
		info.Platform = fmt.Sprintf("%s %s", h.Platform, h.PlatformVersion)
	}

	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}

	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count CPUs: %w", err)
	}
	info.LogicalCPUs = count

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}
	info.TotalMemory = vm.Total

	return info, nil
}

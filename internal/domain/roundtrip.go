package domain

import (
	"context"
	"time"
)

// RoundTripResult summarises one encode/decode benchmark run.
type RoundTripResult struct {
	RunID             string        `json:"runId"             yaml:"runId"`
	Encoding          string        `json:"encoding"          yaml:"encoding"`
	CanonicalEncoding string        `json:"canonicalEncoding" yaml:"canonicalEncoding"`
	Repeat            int           `json:"repeat"            yaml:"repeat"`
	BufferLength      int           `json:"bufferLength"      yaml:"bufferLength"`
	Seed              int64         `json:"seed"              yaml:"seed"`
	Writes            int           `json:"writes"            yaml:"writes"`
	Reads             int           `json:"reads"             yaml:"reads"`
	CharsWritten      int64         `json:"charsWritten"      yaml:"charsWritten"`
	CharsRead         int64         `json:"charsRead"         yaml:"charsRead"`
	BytesWritten      int64         `json:"bytesWritten"      yaml:"bytesWritten"`
	Elapsed           time.Duration `json:"elapsedNs"         yaml:"elapsed"`
	Host              *HostInfo     `json:"host,omitempty"    yaml:"host,omitempty"`
}

// CharsPerSecond returns the combined write and read character rate.
func (r *RoundTripResult) CharsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.CharsWritten+r.CharsRead) / r.Elapsed.Seconds()
}

// HostInfo describes the machine a run executed on.
type HostInfo struct {
	OS          string `json:"os"                    yaml:"os"`
	Platform    string `json:"platform,omitempty"    yaml:"platform,omitempty"`
	CPUModel    string `json:"cpuModel,omitempty"    yaml:"cpuModel,omitempty"`
	LogicalCPUs int    `json:"logicalCpus"           yaml:"logicalCpus"`
	TotalMemory uint64 `json:"totalMemory,omitempty" yaml:"totalMemory,omitempty"`
}

// HostInfoProvider collects HostInfo.
type HostInfoProvider interface {
	HostInfo(ctx context.Context) (*HostInfo, error)
}

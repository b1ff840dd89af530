// Package perf classifies the host machine into a performance tier once at
// startup. The tier gates particle budgets and feature richness so constrained
// hardware degrades gracefully instead of dropping frames.
package perf

import (
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	}
	return "unknown"
}

// AdapterInfo holds what the GPU probe learned. Empty fields mean the probe
// failed and detection fell back to CPU heuristics.
type AdapterInfo struct {
	Name       string
	Vendor     string
	Backend    string
	DeviceType string
}

var (
	detectOnce sync.Once
	detected   Tier
	adapter    AdapterInfo
)

// Detect probes the GPU adapter and core count and returns the tier. Runs the
// probe once; later calls return the cached classification. The QS_TIER env
// var overrides detection entirely (low/medium/high).
func Detect(log *zap.Logger) Tier {
	detectOnce.Do(func() {
		if log == nil {
			log = zap.NewNop()
		}
		if override, ok := tierFromEnv(); ok {
			detected = override
			log.Info("performance tier forced by env", zap.Stringer("tier", detected))
			return
		}
		adapter = probeAdapter()
		detected = classify(adapter, runtime.NumCPU())
		log.Info("performance tier detected",
			zap.Stringer("tier", detected),
			zap.String("gpu", adapter.Name),
			zap.String("backend", adapter.Backend),
			zap.Int("cores", runtime.NumCPU()))
	})
	return detected
}

// Adapter returns the probed GPU info, valid after Detect.
func Adapter() AdapterInfo {
	return adapter
}

func tierFromEnv() (Tier, bool) {
	switch strings.ToLower(os.Getenv("QS_TIER")) {
	case "low":
		return TierLow, true
	case "medium":
		return TierMedium, true
	case "high":
		return TierHigh, true
	}
	return TierLow, false
}

func probeAdapter() AdapterInfo {
	defer func() {
		// A missing GPU stack must not take the process down.
		_ = recover()
	}()

	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return AdapterInfo{}
	}
	defer instance.Release()

	ad, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil || ad == nil {
		return AdapterInfo{}
	}
	defer ad.Release()

	info := ad.GetInfo()
	return AdapterInfo{
		Name:       info.Name,
		Vendor:     info.VendorName,
		Backend:    info.BackendType.String(),
		DeviceType: info.AdapterType.String(),
	}
}

// classify maps the probe result to a tier. Discrete GPU or 8+ cores rates
// high; software rasterizers and small core counts rate low.
func classify(info AdapterInfo, cores int) Tier {
	name := strings.ToLower(info.Name)
	deviceType := strings.ToLower(info.DeviceType)

	software := name == "" ||
		strings.Contains(name, "llvmpipe") ||
		strings.Contains(name, "swiftshader") ||
		strings.Contains(deviceType, "cpu")
	if software {
		if cores >= 8 {
			return TierMedium
		}
		return TierLow
	}

	if strings.Contains(deviceType, "discrete") || cores >= 8 {
		return TierHigh
	}
	if cores >= 4 {
		return TierMedium
	}
	return TierLow
}

package specs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GPUProbe is one strategy for finding the graphics adapter name.
type GPUProbe struct {
	// Name identifies the probe in logs.
	Name string

	// GOOS restricts the probe to a single platform. Empty runs everywhere.
	GOOS string

	// Probe returns the first adapter name it finds.
	Probe func(ctx context.Context) (string, error)
}

// ErrNoAdapter is returned by a probe that ran but found no adapter.
var ErrNoAdapter = errors.New("no graphics adapter found")

// ResolveGPU runs the probes applicable to goos in order and returns the
// first non-empty adapter name. Probe errors and panics count as no
// answer. When no probe answers, UnknownGPU is returned.
func ResolveGPU(ctx context.Context, goos string, probes []GPUProbe) string {
	for _, p := range probes {
		if p.Probe == nil || (p.GOOS != "" && p.GOOS != goos) {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		name, err := runProbe(ctx, p)
		if err != nil {
			logger.Debug("gpu probe gave no answer", "probe", p.Name, "err", err)
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			logger.Debug("gpu probe answered", "probe", p.Name, "gpu", name)
			return name
		}
	}
	return UnknownGPU
}

func runProbe(ctx context.Context, p GPUProbe) (name string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe %s panicked: %v", p.Name, r)
		}
	}()
	return p.Probe(ctx)
}

// DefaultProbes returns the NVIDIA management query followed by the
// Windows WMI video controller lookup.
func DefaultProbes() []GPUProbe {
	return []GPUProbe{
		{
			Name:  "nvidia-smi",
			Probe: nvidiaSMI,
		},
		{
			Name:  "wmi",
			GOOS:  "windows",
			Probe: queryVideoController,
		},
	}
}

func nvidiaSMI(ctx context.Context) (string, error) {
	bin, err := nvidiaSMIPath(os.Getenv, exec.LookPath)
	if err != nil {
		return "", err
	}

	out, err := exec.CommandContext(ctx, bin, "--query-gpu=name", "--format=csv,noheader,nounits").Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", bin, err)
	}
	return parseNvidiaSMI(out)
}

// nvidiaSMIPath finds nvidia-smi on PATH, falling back to the NVSMI
// directory the Windows driver installs into.
func nvidiaSMIPath(getenv func(string) string, lookPath func(string) (string, error)) (string, error) {
	path, err := lookPath("nvidia-smi")
	if err == nil {
		return path, nil
	}

	if drive := getenv("SystemDrive"); drive != "" {
		candidate := filepath.Join(drive+`\`, "Program Files", "NVIDIA Corporation", "NVSMI", "nvidia-smi.exe")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("locating nvidia-smi: %w", err)
}

// parseNvidiaSMI returns the first non-empty line of a csv,noheader query.
func parseNvidiaSMI(out []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", ErrNoAdapter
}

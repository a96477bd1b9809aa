// Package types provides core data types for the gamescan diagnostic utility.
// It includes the hardware snapshot, benchmark result, quality tier, and the
// combined report, along with helpers for converting and formatting sizes.
package types

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Size constants for binary (IEC) units.
const (
	KiB int64 = 1024
	MiB int64 = 1024 * KiB
	GiB int64 = 1024 * MiB
	TiB int64 = 1024 * GiB
)

// SystemSpecs is a snapshot of the host hardware.
// It is produced fresh on every inspection and never mutated.
type SystemSpecs struct {
	// CPU is the processor model name, or "Unknown CPU".
	CPU string `json:"cpu" yaml:"cpu"`

	// RAMGB is total physical memory in GiB, rounded to 2 decimals.
	RAMGB float64 `json:"ram_gb" yaml:"ram_gb"`

	// RAMBytes is total physical memory in bytes.
	RAMBytes uint64 `json:"ram_bytes" yaml:"ram_bytes"`

	// GPU is the first graphics adapter name, or "Unknown GPU".
	GPU string `json:"gpu" yaml:"gpu"`
}

// HumanRAM returns total memory formatted with IEC units (e.g. "16 GiB").
func (s SystemSpecs) HumanRAM() string {
	return humanize.IBytes(s.RAMBytes)
}

// BenchmarkResult is the outcome of a completed render benchmark.
type BenchmarkResult struct {
	// Frames is the number of frames presented.
	Frames int `json:"frames" yaml:"frames"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`

	// FPS is Frames divided by Elapsed in seconds.
	FPS float64 `json:"fps" yaml:"fps"`
}

// Tier is an ordinal quality-setting label.
type Tier int

// Tiers from lowest to highest.
const (
	TierLow Tier = iota
	TierMedium
	TierHigh
	TierUltra
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{TierLow, TierMedium, TierHigh, TierUltra}

// String returns the tier label.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierMedium:
		return "Medium"
	case TierHigh:
		return "High"
	case TierUltra:
		return "Ultra"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ErrInvalidTier indicates that a tier label could not be parsed.
var ErrInvalidTier = errors.New("invalid tier")

// ParseTier parses a tier label, ignoring case and surrounding whitespace.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return TierLow, nil
	case "medium":
		return TierMedium, nil
	case "high":
		return TierHigh, nil
	case "ultra":
		return TierUltra, nil
	default:
		return TierLow, fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
}

// MarshalText encodes the tier as its label.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier label.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Recommendation pairs a detected game with its recommended tier.
type Recommendation struct {
	Game string `json:"game" yaml:"game"`
	Tier Tier   `json:"tier" yaml:"tier"`
}

// Report is the combined output of a full diagnostic run.
type Report struct {
	// ID uniquely identifies the run.
	ID string `json:"id" yaml:"id"`

	// GeneratedAt is when the run started.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	Specs SystemSpecs `json:"specs" yaml:"specs"`
	Games []string    `json:"games" yaml:"games"`

	// Benchmark is nil when the benchmark was aborted or failed.
	Benchmark *BenchmarkResult `json:"benchmark,omitempty" yaml:"benchmark,omitempty"`

	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`

	// Aborted is set when the benchmark was stopped by a quit signal.
	Aborted bool `json:"aborted" yaml:"aborted"`

	// Warnings collects non-fatal problems encountered during the run.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// BytesToGB converts a byte count to GiB rounded to two decimal places.
func BytesToGB(b uint64) float64 {
	return math.Round(float64(b)/float64(GiB)*100) / 100
}

// sizePattern matches size strings like "10MB", "1G", "512K" or "1.5GiB".
var sizePattern = regexp.MustCompile(`(?i)^\s*([0-9]+(?:\.[0-9]+)?)\s*([KMGT]?(?:i?B)?)\s*$`)

// ErrInvalidSize indicates that a size string could not be parsed.
var ErrInvalidSize = errors.New("invalid size format")

// ParseSize parses a human-readable size into bytes. Units are binary
// regardless of spelling, so "10MB", "10M" and "10MiB" are all 10 MiB.
func ParseSize(s string) (int64, error) {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	unit := strings.ToUpper(m[2])
	unit = strings.TrimSuffix(unit, "IB")
	unit = strings.TrimSuffix(unit, "B")

	var multiplier int64
	switch unit {
	case "":
		multiplier = 1
	case "K":
		multiplier = KiB
	case "M":
		multiplier = MiB
	case "G":
		multiplier = GiB
	case "T":
		multiplier = TiB
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidSize, m[2])
	}

	return int64(value * float64(multiplier)), nil
}

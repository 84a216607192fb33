package strict

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats captures what one cleaning call did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// Block counts
	Blocks    int           `json:"blocks" yaml:"blocks"`
	Kept      int           `json:"kept" yaml:"kept"`
	Discarded map[Stage]int `json:"discarded" yaml:"discarded"` // stage -> count

	// Blocks that had at least one address tagged.
	AddressBlocks int `json:"address_blocks" yaml:"address_blocks"`

	// Truncated is set when MaxLines stopped the call early.
	Truncated bool `json:"truncated" yaml:"truncated"`

	Duration time.Duration `json:"duration_ns" yaml:"duration"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		Discarded: make(map[Stage]int),
	}
}

// RecordDiscard records that a block was dropped at the given stage.
func (s *Stats) RecordDiscard(stage Stage) {
	s.Discarded[stage]++
}

// TotalDiscarded returns the sum of all discards.
func (s *Stats) TotalDiscarded() int {
	total := 0
	for _, n := range s.Discarded {
		total += n
	}
	return total
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %s -> %s\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes))))
	sb.WriteString(fmt.Sprintf("Blocks: %d in, %d kept, %d discarded\n",
		s.Blocks, s.Kept, s.TotalDiscarded()))

	if len(s.Discarded) > 0 {
		stages := make([]string, 0, len(s.Discarded))
		for stage := range s.Discarded {
			stages = append(stages, string(stage))
		}
		sort.Strings(stages)

		parts := make([]string, 0, len(stages))
		for _, stage := range stages {
			parts = append(parts, fmt.Sprintf("%s=%d", stage, s.Discarded[Stage(stage)]))
		}
		sb.WriteString("Discarded by stage: ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	if s.AddressBlocks > 0 {
		sb.WriteString(fmt.Sprintf("Address blocks: %d\n", s.AddressBlocks))
	}
	if s.Truncated {
		sb.WriteString("Truncated: line cap reached\n")
	}

	sb.WriteString(fmt.Sprintf("Duration: %v\n", s.Duration.Round(time.Microsecond)))
	return sb.String()
}

// Result contains the output of a cleaning call.
type Result struct {
	Lines []string `json:"lines"`
	Stats *Stats   `json:"stats"`
}

package strict

import (
	"strings"
	"testing"
)

func TestStats_RecordDiscard(t *testing.T) {
	s := NewStats()
	s.RecordDiscard(StageJunk)
	s.RecordDiscard(StageJunk)
	s.RecordDiscard(StageEnglish)

	if s.Discarded[StageJunk] != 2 {
		t.Errorf("junk = %d, want 2", s.Discarded[StageJunk])
	}
	if s.TotalDiscarded() != 3 {
		t.Errorf("TotalDiscarded() = %d, want 3", s.TotalDiscarded())
	}
}

func TestStats_String(t *testing.T) {
	s := NewStats()
	s.InputBytes = 2048
	s.OutputBytes = 1024
	s.Blocks = 10
	s.Kept = 7
	s.RecordDiscard(StageNote)
	s.RecordDiscard(StageJunk)
	s.RecordDiscard(StageJunk)
	s.AddressBlocks = 1
	s.Truncated = true

	out := s.String()

	for _, want := range []string{
		"Size: 2.0 kB -> 1.0 kB",
		"Blocks: 10 in, 7 kept, 3 discarded",
		"Discarded by stage: junk=2, note=1",
		"Address blocks: 1",
		"Truncated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q in:\n%s", want, out)
		}
	}
}

func TestCleanWithStats_Counts(t *testing.T) {
	c := New(DefaultConfig())

	res := c.CleanWithStats([]string{
		"ప్రభుత్వం కొత్త పథకం ప్రకటించింది",
		"ఇక్కడ చూడండి",
		"కార్యాలయం 1-2-3, గుంటూరు 522 001 లో ఉంది",
		"ప్రభుత్వం కొత్త పథకం ప్రకటించింది",
	})

	if res.Stats.Blocks != 4 {
		t.Errorf("Blocks = %d, want 4", res.Stats.Blocks)
	}
	if res.Stats.Kept != 2 {
		t.Errorf("Kept = %d, want 2", res.Stats.Kept)
	}
	if res.Stats.Discarded[StageJunk] != 1 || res.Stats.Discarded[StageDuplicate] != 1 {
		t.Errorf("Discarded = %v", res.Stats.Discarded)
	}
	if res.Stats.AddressBlocks != 1 {
		t.Errorf("AddressBlocks = %d, want 1", res.Stats.AddressBlocks)
	}
	if res.Stats.Truncated {
		t.Error("Truncated should not be set")
	}
	if res.Stats.InputBytes == 0 || res.Stats.OutputBytes == 0 {
		t.Error("byte counters not updated")
	}
}

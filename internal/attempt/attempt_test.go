package attempt

import (
	"errors"
	"testing"

	"github.com/jtrask/stagehand/internal/activity"
)

func sampleActivity(id string, partIDs ...string) *activity.Activity {
	parts := make([]activity.Part, len(partIDs))
	for i, p := range partIDs {
		parts[i] = activity.Part{ID: p}
	}
	return &activity.Activity{ID: id, Content: activity.Content{PartsLayout: parts}}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	att := r.Register(sampleActivity("q-1", "input", "hint"))

	if att.Number != 1 {
		t.Errorf("Number = %d, want 1", att.Number)
	}
	if att.AttemptGuid == "" {
		t.Error("missing attempt guid")
	}
	if len(att.Parts) != 2 {
		t.Fatalf("Parts = %d, want 2", len(att.Parts))
	}
	if att.Parts[0].AttemptGuid == att.Parts[1].AttemptGuid {
		t.Error("part guids must be distinct")
	}

	got, err := r.ByGuid(att.AttemptGuid)
	if err != nil || got != att {
		t.Errorf("ByGuid = %v, %v", got, err)
	}
	got, err = r.ByActivity("q-1")
	if err != nil || got != att {
		t.Errorf("ByActivity = %v, %v", got, err)
	}

	if p := att.Part("input"); p == nil || p.PartID != "input" {
		t.Errorf("Part(input) = %+v", p)
	}
	if p := att.PartByGuid(att.Parts[1].AttemptGuid); p == nil || p.PartID != "hint" {
		t.Errorf("PartByGuid = %+v", p)
	}
}

func TestRegistryReregisterStartsNewAttempt(t *testing.T) {
	r := NewRegistry()
	a := sampleActivity("q-1", "input")

	first := r.Register(a)
	second := r.Register(a)

	if second.Number != 2 {
		t.Errorf("Number = %d, want 2", second.Number)
	}
	if second.AttemptGuid == first.AttemptGuid {
		t.Error("new attempt must get a fresh guid")
	}
	if _, err := r.ByGuid(first.AttemptGuid); !errors.Is(err, ErrMissingBinding) {
		t.Errorf("stale guid lookup err = %v, want ErrMissingBinding", err)
	}
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry()
	att := r.Register(sampleActivity("q-1", "input"))

	r.Drop("q-1")

	if _, err := r.ByActivity("q-1"); !errors.Is(err, ErrMissingBinding) {
		t.Errorf("ByActivity after drop: %v", err)
	}
	if _, err := r.ByGuid(att.AttemptGuid); !errors.Is(err, ErrMissingBinding) {
		t.Errorf("ByGuid after drop: %v", err)
	}
}

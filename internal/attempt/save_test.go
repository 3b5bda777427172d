package attempt

import (
	"context"
	"errors"
	"testing"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/scripting"
)

type writeRecord struct {
	attemptGuid     string
	partAttemptGuid string
	finalize        bool
}

func newTestSaver(writes *[]writeRecord) (*Saver, *Registry, *scripting.Environment) {
	reg := NewRegistry()
	env := scripting.NewEnvironment()
	s := &Saver{
		Registry: reg,
		Env:      env,
		WriteState: func(ctx context.Context, attemptGuid, partAttemptGuid string, resp *Response, finalize bool) error {
			*writes = append(*writes, writeRecord{attemptGuid, partAttemptGuid, finalize})
			return nil
		},
	}
	return s, reg, env
}

func TestAssignOperations(t *testing.T) {
	resp := &Response{Input: []ResponseInput{
		{Key: "value", Path: "input.value", Value: "7", Type: "number"},
		{Key: "text", Path: "stage.input.text", Value: "seven"},
		{Key: "scoped", Path: "q-2|stage.input.other", Value: "x"},
		{Key: "empty", Path: "", Value: "dropped"},
	}}

	ops := AssignOperations(resp)
	if len(ops) != 3 {
		t.Fatalf("ops = %d, want 3", len(ops))
	}
	if ops[0].Target != "stage.input.value" {
		t.Errorf("bare path not prefixed: %q", ops[0].Target)
	}
	if ops[1].Target != "stage.input.text" {
		t.Errorf("prefixed path altered: %q", ops[1].Target)
	}
	if ops[2].Target != "q-2|stage.input.other" {
		t.Errorf("scoped path altered: %q", ops[2].Target)
	}
	if AssignOperations(nil) != nil {
		t.Error("nil response should produce no ops")
	}
}

func TestSavePart(t *testing.T) {
	var writes []writeRecord
	s, reg, env := newTestSaver(&writes)
	att := reg.Register(&activity.Activity{
		ID:      "q-1",
		Content: activity.Content{PartsLayout: []activity.Part{{ID: "input"}}},
	})
	part := att.Parts[0]

	resp := &Response{Input: []ResponseInput{
		{Key: "value", Path: "input.value", Value: "42", Type: "number"},
	}}

	diags, err := s.SavePart(context.Background(), att.AttemptGuid, part.AttemptGuid, resp)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v", diags)
	}
	if part.Response != resp {
		t.Error("response not recorded on part attempt")
	}
	if got := env.GetNumber("stage.input.value"); got != 42 {
		t.Errorf("env mirror = %v, want 42", got)
	}
	if len(writes) != 1 || writes[0].finalize {
		t.Errorf("writes = %+v, want one non-final write", writes)
	}
}

func TestSavePartDiagnosticsDoNotBlock(t *testing.T) {
	var writes []writeRecord
	s, reg, env := newTestSaver(&writes)
	att := reg.Register(&activity.Activity{
		ID:      "q-1",
		Content: activity.Content{PartsLayout: []activity.Part{{ID: "input"}}},
	})

	resp := &Response{Input: []ResponseInput{
		{Key: "bad", Path: "input.bad", Value: "oops", Type: "number"},
		{Key: "good", Path: "input.good", Value: "1", Type: "number"},
	}}

	diags, err := s.SavePart(context.Background(), att.AttemptGuid, att.Parts[0].AttemptGuid, resp)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 {
		t.Fatalf("diags = %v, want one", diags)
	}
	if got := env.GetNumber("stage.input.good"); got != 1 {
		t.Errorf("good assignment blocked: %v", got)
	}
	if len(writes) != 1 {
		t.Errorf("persistence skipped: %+v", writes)
	}
}

func TestSavePartUnknownBinding(t *testing.T) {
	var writes []writeRecord
	s, reg, _ := newTestSaver(&writes)
	att := reg.Register(&activity.Activity{
		ID:      "q-1",
		Content: activity.Content{PartsLayout: []activity.Part{{ID: "input"}}},
	})

	if _, err := s.SavePart(context.Background(), "no-such-guid", att.Parts[0].AttemptGuid, nil); !errors.Is(err, ErrMissingBinding) {
		t.Errorf("unknown attempt: %v", err)
	}
	if _, err := s.SavePart(context.Background(), att.AttemptGuid, "no-such-part", nil); !errors.Is(err, ErrMissingBinding) {
		t.Errorf("unknown part: %v", err)
	}
}

func TestSubmitPartFinalizes(t *testing.T) {
	var writes []writeRecord
	s, reg, _ := newTestSaver(&writes)
	att := reg.Register(&activity.Activity{
		ID:      "q-1",
		Content: activity.Content{PartsLayout: []activity.Part{{ID: "input"}}},
	})

	_, err := s.SubmitPart(context.Background(), att.AttemptGuid, att.Parts[0].AttemptGuid, &Response{})
	if err != nil {
		t.Fatal(err)
	}
	if len(writes) != 2 {
		t.Fatalf("writes = %+v, want save then finalize", writes)
	}
	if writes[0].finalize || !writes[1].finalize {
		t.Errorf("finalize flags = %+v", writes)
	}
}

func TestSavePartToTreeSkipsNonOwners(t *testing.T) {
	var writes []writeRecord
	s, reg, env := newTestSaver(&writes)

	parent := &activity.Activity{
		ID:      "layer",
		Content: activity.Content{PartsLayout: []activity.Part{{ID: "banner"}}},
	}
	child := &activity.Activity{
		ID:      "q-1",
		Content: activity.Content{PartsLayout: []activity.Part{{ID: "input"}}},
	}
	reg.Register(parent)
	att := reg.Register(child)
	tree := activity.Tree{parent, child}

	resp := &Response{Input: []ResponseInput{
		{Key: "value", Path: "input.value", Value: "3", Type: "number"},
	}}

	err := s.SavePartToTree(context.Background(), att.AttemptGuid, att.Parts[0].AttemptGuid, resp, tree)
	if err != nil {
		t.Fatal(err)
	}
	// only the owning activity's attempt was written
	if len(writes) != 1 || writes[0].attemptGuid != att.AttemptGuid {
		t.Errorf("writes = %+v", writes)
	}
	if got := env.GetNumber("stage.input.value"); got != 3 {
		t.Errorf("env mirror = %v", got)
	}
}

func TestPreviewModeSkipsPersistence(t *testing.T) {
	reg := NewRegistry()
	env := scripting.NewEnvironment()
	s := &Saver{Registry: reg, Env: env}

	att := reg.Register(&activity.Activity{
		ID:      "q-1",
		Content: activity.Content{PartsLayout: []activity.Part{{ID: "input"}}},
	})

	diags, err := s.SavePart(context.Background(), att.AttemptGuid, att.Parts[0].AttemptGuid, &Response{
		Input: []ResponseInput{{Key: "value", Path: "input.value", Value: "9"}},
	})
	if err != nil || len(diags) != 0 {
		t.Fatalf("diags=%v err=%v", diags, err)
	}
	if v, _ := env.Get("stage.input.value"); v != scripting.String("9") {
		t.Errorf("env = %+v", v)
	}

	got, err := s.ReadPart(context.Background(), att.AttemptGuid, att.Parts[0].AttemptGuid)
	if err != nil || got != nil {
		t.Errorf("ReadPart in preview = %v, %v, want nil, nil", got, err)
	}
}

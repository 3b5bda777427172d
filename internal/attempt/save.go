package attempt

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/scripting"
)

// WriteStateFunc persists a part response for (attemptGuid, partAttemptGuid).
// The collaborator owns retries and offline handling; a returned error
// surfaces upward unmodified.
type WriteStateFunc func(ctx context.Context, attemptGuid, partAttemptGuid string, resp *Response, finalize bool) error

// ReadStateFunc reads previously persisted part state.
type ReadStateFunc func(ctx context.Context, attemptGuid, partAttemptGuid string) (*Response, error)

// Saver applies part responses to the session environment and delegates
// persistence. A nil WriteState means preview mode: state lands in the
// environment only.
type Saver struct {
	Registry   *Registry
	Env        *scripting.Environment
	WriteState WriteStateFunc
	ReadState  ReadStateFunc
}

// AssignOperations converts a part response into the assignment batch that
// mirrors it into the environment. Paths without a stage prefix get one;
// paths already qualified pass through.
func AssignOperations(resp *Response) []scripting.ApplyOperation {
	if resp == nil {
		return nil
	}
	ops := make([]scripting.ApplyOperation, 0, len(resp.Input))
	for _, in := range resp.Input {
		target := in.Path
		if target == "" {
			continue
		}
		if !strings.HasPrefix(target, "stage.") && !strings.Contains(target, "|") {
			target = "stage." + target
		}
		ops = append(ops, scripting.ApplyOperation{
			Target:     target,
			Operator:   scripting.OpAssign,
			Value:      in.Value,
			TargetType: in.Type,
		})
	}
	return ops
}

// SavePart records the response on the part's attempt, mirrors it into the
// environment assignment-by-assignment so one failing expression cannot
// block the others, and delegates the write. Returns the per-assignment
// errors as diagnostics alongside any fatal persistence error.
func (s *Saver) SavePart(ctx context.Context, attemptGuid, partAttemptGuid string, resp *Response) ([]error, error) {
	att, err := s.Registry.ByGuid(attemptGuid)
	if err != nil {
		return nil, err
	}
	part := att.PartByGuid(partAttemptGuid)
	if part == nil {
		return nil, fmt.Errorf("%w: part attempt %s", ErrMissingBinding, partAttemptGuid)
	}
	part.Response = resp

	var diags []error
	for _, op := range AssignOperations(resp) {
		if _, errs := scripting.ApplyBulk([]scripting.ApplyOperation{op}, s.Env); len(errs) > 0 {
			diags = append(diags, errs...)
		}
	}

	if s.WriteState == nil {
		return diags, nil
	}
	if err := s.WriteState(ctx, attemptGuid, partAttemptGuid, resp, false); err != nil {
		return diags, fmt.Errorf("write part state: %w", err)
	}
	return diags, nil
}

// SubmitPart is SavePart with the finalize flag set on the write.
func (s *Saver) SubmitPart(ctx context.Context, attemptGuid, partAttemptGuid string, resp *Response) ([]error, error) {
	diags, err := s.SavePart(ctx, attemptGuid, partAttemptGuid, resp)
	if err != nil || s.WriteState == nil {
		return diags, err
	}
	if err := s.WriteState(ctx, attemptGuid, partAttemptGuid, resp, true); err != nil {
		return diags, fmt.Errorf("finalize part state: %w", err)
	}
	return diags, nil
}

// SavePartToTree saves a response to every activity in the tree that owns or
// inherits the part. Activities without an attempt record fail the cycle;
// activities whose attempt does not carry the part (a grandparent layer)
// are skipped.
func (s *Saver) SavePartToTree(ctx context.Context, attemptGuid, partAttemptGuid string, resp *Response, tree activity.Tree) error {
	att, err := s.Registry.ByGuid(attemptGuid)
	if err != nil {
		return err
	}
	source := att.PartByGuid(partAttemptGuid)
	if source == nil {
		return fmt.Errorf("%w: part attempt %s", ErrMissingBinding, partAttemptGuid)
	}

	for _, a := range tree {
		treeAtt, err := s.Registry.ByActivity(a.ID)
		if err != nil {
			return err
		}
		part := treeAtt.Part(source.PartID)
		if part == nil {
			// in the tree but does not own or inherit this part
			continue
		}
		diags, err := s.SavePart(ctx, treeAtt.AttemptGuid, part.AttemptGuid, resp)
		if err != nil {
			return err
		}
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "warning: save part %s: %v\n", source.PartID, d)
		}
	}
	return nil
}

// ReadPart reads persisted state for a part through the read collaborator.
func (s *Saver) ReadPart(ctx context.Context, attemptGuid, partAttemptGuid string) (*Response, error) {
	att, err := s.Registry.ByGuid(attemptGuid)
	if err != nil {
		return nil, err
	}
	if att.PartByGuid(partAttemptGuid) == nil {
		return nil, fmt.Errorf("%w: part attempt %s", ErrMissingBinding, partAttemptGuid)
	}
	if s.ReadState == nil {
		return nil, nil
	}
	return s.ReadState(ctx, attemptGuid, partAttemptGuid)
}

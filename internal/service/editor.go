package service

import (
	"context"

	"github.com/threadline/ratio-service/internal/allocation"
	"github.com/threadline/ratio-service/internal/domain/model"
	"github.com/threadline/ratio-service/internal/metrics"
	"github.com/threadline/ratio-service/internal/sizescale"
)

// EditorState is the packing-rule editor's lifecycle state.
type EditorState int

const (
	// StateViewing shows the resolved rule with no open draft.
	StateViewing EditorState = iota
	// StateEditing holds a mutable draft of the rule.
	StateEditing
	// StateSaving is the transient state while a save is in flight.
	StateSaving
	// StateReverting is the transient state while a revert is in flight.
	StateReverting
)

func (s EditorState) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	case StateReverting:
		return "reverting"
	}
	return "unknown"
}

// ValidateRatio checks the edit-time invariant: set pack equals the sum of
// the distribution over the expanded scale. Rules on the "N/A" scale are
// exempt; their pack is an ordering increment, not a distribution target.
func ValidateRatio(ratio *model.GarmentRatio) bool {
	if ratio == nil {
		return false
	}
	sizes := sizescale.Expand(ratio.SizeScale)
	if len(sizes) == 0 {
		return true
	}
	if ratio.SetPack == nil {
		return false
	}
	return *ratio.SetPack == ratio.DistributionSum(sizes)
}

// Editor drives one garment's packing-rule edit session. It snapshots the
// resolved rule into a draft, applies scale and quantity edits, refuses
// invalid saves, and persists accepted edits through the ratio store with
// the matching cache invalidation. The UI serializes edits to one garment
// at a time, so the editor itself is not safe for concurrent use.
type Editor struct {
	store    *RatioStore
	resolver *Resolver
	audit    EditLogService

	state EditorState
	scope string
	draft *model.GarmentRatio
	actor string

	// OnSave, OnCancel, and OnRevert notify the owning screen after the
	// corresponding transition completes. Any of them may be nil.
	OnSave   func()
	OnCancel func()
	OnRevert func()
}

// NewEditor creates an editor in the viewing state. The audit service may
// be nil.
func NewEditor(store *RatioStore, resolver *Resolver, audit EditLogService) *Editor {
	return &Editor{
		store:    store,
		resolver: resolver,
		audit:    audit,
		state:    StateViewing,
	}
}

// State returns the current lifecycle state.
func (e *Editor) State() EditorState {
	return e.state
}

// Draft returns the open draft, or nil outside of an edit.
func (e *Editor) Draft() *model.GarmentRatio {
	return e.draft
}

// SetActor records who is editing, for the audit trail.
func (e *Editor) SetActor(actor string) {
	e.actor = actor
}

// BeginEdit resolves the rule for a catalog item and snapshots it into a
// mutable draft, entering the editing state. Items with no packing rule
// cannot be edited.
func (e *Editor) BeginEdit(ctx context.Context, categoryPath, style, organizationKey string) error {
	ratio := e.resolver.Resolve(ctx, categoryPath, style, organizationKey)
	if ratio == nil {
		return ErrNoRatio
	}

	scope := organizationKey
	if scope == "" {
		scope = model.DefaultScope
	}

	e.scope = scope
	e.draft = ratio.Clone()
	e.state = StateEditing
	return nil
}

// SetScale changes the draft's size scale and reconciles the distribution:
// sizes kept across both scales preserve their quantities, newly
// introduced sizes start at zero, and dropped sizes are zeroed.
func (e *Editor) SetScale(token string) error {
	if e.state != StateEditing {
		return ErrNotEditing
	}

	oldSizes := sizescale.Expand(e.draft.SizeScale)
	newSizes := sizescale.Expand(token)

	retained := make(map[string]bool, len(newSizes))
	for _, s := range newSizes {
		retained[s] = true
	}

	for _, s := range oldSizes {
		if !retained[s] {
			e.draft.SetCount(s, model.Fixed(0))
		}
	}
	for _, s := range newSizes {
		if _, ok := e.draft.Count(s); !ok {
			e.draft.SetCount(s, model.Fixed(0))
		}
	}

	e.draft.SizeScale = token
	return nil
}

// SetPackSize sets the draft's declared pack size.
func (e *Editor) SetPackSize(n int) error {
	if e.state != StateEditing {
		return ErrNotEditing
	}
	e.draft.SetPack = &n
	return nil
}

// SetCount sets one size's per-pack quantity in the draft.
func (e *Editor) SetCount(code string, c model.PackCount) error {
	if e.state != StateEditing {
		return ErrNotEditing
	}
	e.draft.SetCount(code, c)
	return nil
}

// IsValid reports whether the draft satisfies the pack-sum invariant.
func (e *Editor) IsValid() bool {
	return ValidateRatio(e.draft)
}

// Validity reports the draft's running distribution total against its
// declared pack size, for "n more to complete the pack" hints.
func (e *Editor) Validity() model.PackValidity {
	if e.draft == nil {
		return model.PackValidity{IsValid: true}
	}
	sizes := sizescale.Expand(e.draft.SizeScale)
	counts := make(model.SizeCounts, len(sizes))
	for _, s := range sizes {
		if c, ok := e.draft.Count(s); ok {
			counts[s] = c.Units()
		} else {
			counts[s] = 0
		}
	}
	return allocation.PackValidity(counts, e.draft.PackSize(), len(sizes) == 0)
}

// Save persists the draft as a merge write into the edited scope,
// invalidates that scope's cache, and returns to viewing. A draft that
// fails validation is refused and stays editable; a storage failure also
// leaves the draft editable so the user can retry.
func (e *Editor) Save(ctx context.Context) error {
	if e.state != StateEditing {
		return ErrNotEditing
	}
	if !e.IsValid() {
		metrics.RecordEdit(model.EditActionSave, "invalid")
		return ErrInvalidDraft
	}

	e.state = StateSaving
	if err := e.store.Write(ctx, e.scope, e.draft.Name, *e.draft); err != nil {
		e.state = StateEditing
		metrics.RecordEdit(model.EditActionSave, "error")
		return err
	}

	e.store.Invalidate(e.scope)
	e.recordAudit(ctx, model.EditActionSave)
	metrics.RecordEdit(model.EditActionSave, "success")

	e.state = StateViewing
	if e.OnSave != nil {
		e.OnSave()
	}
	return nil
}

// Cancel discards the draft and returns to viewing.
func (e *Editor) Cancel() {
	e.draft = nil
	e.state = StateViewing
	if e.OnCancel != nil {
		e.OnCancel()
	}
}

// Revert deletes the organization override for the drafted garment,
// invalidates both the organization and default scopes (the default out of
// caution, since it may have been served stale), and reloads the default
// rule into the draft for immediate display. It requires explicit
// confirmation and an open edit on a non-default scope.
func (e *Editor) Revert(ctx context.Context, confirmed bool) error {
	if e.state != StateEditing {
		return ErrNotEditing
	}
	if e.scope == model.DefaultScope {
		return ErrNotOverride
	}
	if !confirmed {
		return ErrRevertNotConfirmed
	}

	e.state = StateReverting
	name := e.draft.Name
	if err := e.store.DeleteOverride(ctx, e.scope, name); err != nil {
		e.state = StateEditing
		metrics.RecordEdit(model.EditActionRevert, "error")
		return err
	}

	e.store.Invalidate(e.scope, model.DefaultScope)
	e.recordAudit(ctx, model.EditActionRevert)
	metrics.RecordEdit(model.EditActionRevert, "success")

	e.draft = e.store.Find(ctx, model.DefaultScope, name)
	e.state = StateViewing
	if e.OnRevert != nil {
		e.OnRevert()
	}
	return nil
}

// recordAudit writes a best-effort audit entry; failures only log.
func (e *Editor) recordAudit(ctx context.Context, action string) {
	if e.audit == nil || e.draft == nil {
		return
	}
	e.audit.Record(ctx, &model.EditLog{
		Action:    action,
		Scope:     e.scope,
		Garment:   e.draft.Name,
		Actor:     e.actor,
		SetPack:   e.draft.PackSize(),
		SizeScale: e.draft.Scale(),
	})
}

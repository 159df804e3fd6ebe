package model

import "time"

// Edit actions recorded in the audit trail.
const (
	EditActionSave   = "save"
	EditActionRevert = "revert"
)

// EditLog records one accepted packing-rule edit.
type EditLog struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Scope     string    `json:"scope"`
	Garment   string    `json:"garment"`
	Actor     string    `json:"actor,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	// SetPack is the declared pack size after the edit, zero when unset.
	SetPack int `json:"set_pack,omitempty"`
	// SizeScale is the scale token after the edit.
	SizeScale string `json:"size_scale,omitempty"`
}

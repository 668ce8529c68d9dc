package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditPayloadVersion is the current schema version of AuditPayload.
// Version 0 denotes a legacy flat field map.
const AuditPayloadVersion = 1

// AuditRecord is an immutable entry describing a transition on a tracked entity.
// IsRestored is nil for records that are not delete records, false for an
// outstanding delete and true once the delete has been reversed.
type AuditRecord struct {
	ID         int64         `json:"id"`
	Kind       AuditKind     `json:"kind"`
	EntityKind EntityKind    `json:"entity_kind"`
	PrimaryKey string        `json:"primary_key"`
	CreatedBy  *uuid.UUID    `json:"created_by,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	Payload    *AuditPayload `json:"payload,omitempty"`
	IsRestored *bool         `json:"is_restored,omitempty"`
}

// Restored reports whether a delete record has already been reversed.
func (r AuditRecord) Restored() bool {
	return r.IsRestored != nil && *r.IsRestored
}

// AuditPayload is the structured body of an audit record.
type AuditPayload struct {
	Version int            `json:"v"`
	Claim   *ClaimSnapshot `json:"claim,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// NewFieldsPayload builds a payload that carries free-form changed fields.
func NewFieldsPayload(fields map[string]any) *AuditPayload {
	return &AuditPayload{Version: AuditPayloadVersion, Fields: fields}
}

// NewClaimPayload builds a payload that captures a role claim for reconstruction.
func NewClaimPayload(c RoleClaim) *AuditPayload {
	return &AuditPayload{
		Version: AuditPayloadVersion,
		Claim: &ClaimSnapshot{
			RoleID:     c.RoleID,
			ClaimType:  c.ClaimType,
			ClaimValue: c.ClaimValue,
		},
	}
}

// ClaimSnapshot holds the fields needed to rebuild a hard-deleted role claim.
type ClaimSnapshot struct {
	RoleID     int64  `json:"role_id"`
	ClaimType  string `json:"claim_type"`
	ClaimValue string `json:"claim_value"`
}

// Complete reports whether every field needed for reconstruction is present.
func (s *ClaimSnapshot) Complete() bool {
	return s != nil && s.RoleID > 0 && s.ClaimType != "" && s.ClaimValue != ""
}

// DecodeAuditPayload decodes a stored payload. Empty input yields nil.
// Legacy payloads (no version) are flat maps; a claim is recovered from the
// RoleId, ClaimType and ClaimValue keys when present.
func DecodeAuditPayload(raw []byte) (*AuditPayload, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var p AuditPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode audit payload: %w", err)
	}
	if p.Version > 0 {
		return &p, nil
	}

	var legacy map[string]any
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("decode legacy audit payload: %w", err)
	}

	return &AuditPayload{Fields: legacy, Claim: claimFromLegacy(legacy)}, nil
}

func claimFromLegacy(m map[string]any) *ClaimSnapshot {
	roleID, okRole := m["RoleId"].(float64)
	claimType, okType := m["ClaimType"].(string)
	claimValue, okValue := m["ClaimValue"].(string)
	if !okRole && !okType && !okValue {
		return nil
	}
	return &ClaimSnapshot{
		RoleID:     int64(roleID),
		ClaimType:  claimType,
		ClaimValue: claimValue,
	}
}

// AuditFilter narrows an audit history query. Zero values are ignored.
type AuditFilter struct {
	EntityKind *EntityKind
	Kind       *AuditKind
	PrimaryKey *string
	CreatedBy  *uuid.UUID
	From       *time.Time
	To         *time.Time
	Restored   *bool
	Limit      int
	Offset     int
}

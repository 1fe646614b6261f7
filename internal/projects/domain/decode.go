package domain

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
)

// DecodeRecords decodes the first MaxProjects raw records. Records past the
// limit are never inspected.
func DecodeRecords(raw []json.RawMessage) []Record {
	return lo.Map(lo.Slice(raw, 0, MaxProjects), func(m json.RawMessage, _ int) Record {
		var r Record
		_ = r.UnmarshalJSON(m)
		return r
	})
}

// UnmarshalJSON decodes the allow-listed fields one at a time. A field whose
// JSON type does not match is left absent; a non-object record has no fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = Record{}
	fields, ok := object(data)
	if !ok {
		return nil
	}

	r.ID = optional[string](fields["id"])
	r.Name = optional[string](fields["name"])
	r.Framework = optional[string](fields["framework"])
	r.CreatedAt = optional[int64](fields["createdAt"])
	r.UpdatedAt = optional[int64](fields["updatedAt"])

	if link, ok := object(fields["link"]); ok {
		r.Link = &RecordLink{
			Org:  optional[string](link["org"]),
			Repo: optional[string](link["repo"]),
		}
	}

	if targets, ok := object(fields["targets"]); ok {
		r.Targets = &Targets{}
		if production, ok := object(targets["production"]); ok {
			r.Targets.Production = &ProductionTarget{Alias: stringList(production["alias"])}
		}
	}

	var deployments []json.RawMessage
	if err := json.Unmarshal(fields["latestDeployments"], &deployments); err == nil {
		r.LatestDeployments = lo.Map(deployments, func(m json.RawMessage, _ int) Deployment {
			var d Deployment
			_ = d.UnmarshalJSON(m)
			return d
		})
	}
	return nil
}

// UnmarshalJSON decodes a deployment with the same tolerance as Record.
func (d *Deployment) UnmarshalJSON(data []byte) error {
	*d = Deployment{}
	fields, ok := object(data)
	if !ok {
		return nil
	}
	d.Alias = stringList(fields["alias"])
	d.URL = optional[string](fields["url"])
	d.ReadyState = optional[string](fields["readyState"])
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if isAbsent(raw) {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func optional[T any](raw json.RawMessage) *T {
	if isAbsent(raw) {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func stringList(raw json.RawMessage) []string {
	if isAbsent(raw) {
		return nil
	}
	var v []string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

package domain

import (
	"encoding/json"

	"github.com/samber/lo"
)

// MaxProjects bounds how many upstream records are exposed.
const MaxProjects = 6

// ListResponse is the upstream envelope for the project list endpoint.
// Records stay raw until DecodeRecords so one odd record cannot fail the list.
type ListResponse struct {
	Projects []json.RawMessage `json:"projects"`
}

// Record is a project as returned by the hosting provider. Every field is
// optional; a nil pointer means the upstream omitted it.
type Record struct {
	ID                *string      `json:"id,omitempty"`
	Name              *string      `json:"name,omitempty"`
	Framework         *string      `json:"framework,omitempty"`
	CreatedAt         *int64       `json:"createdAt,omitempty"`
	UpdatedAt         *int64       `json:"updatedAt,omitempty"`
	Link              *RecordLink  `json:"link,omitempty"`
	Targets           *Targets     `json:"targets,omitempty"`
	LatestDeployments []Deployment `json:"latestDeployments,omitempty"`
}

type RecordLink struct {
	Org  *string `json:"org,omitempty"`
	Repo *string `json:"repo,omitempty"`
}

type Targets struct {
	Production *ProductionTarget `json:"production,omitempty"`
}

type ProductionTarget struct {
	Alias []string `json:"alias,omitempty"`
}

// Deployment is one entry of a record's recent deployments.
type Deployment struct {
	Alias      []string `json:"alias,omitempty"`
	URL        *string  `json:"url,omitempty"`
	ReadyState *string  `json:"readyState,omitempty"`
}

// Project is the public subset of a Record. No other field may be added
// without reviewing what it exposes.
type Project struct {
	ID                *string      `json:"id,omitempty"`
	Name              *string      `json:"name,omitempty"`
	Framework         *string      `json:"framework,omitempty"`
	CreatedAt         *int64       `json:"createdAt,omitempty"`
	UpdatedAt         *int64       `json:"updatedAt,omitempty"`
	Link              *Link        `json:"link,omitempty"`
	Targets           *Targets     `json:"targets,omitempty"`
	LatestDeployments []Deployment `json:"latestDeployments"`
}

type Link struct {
	Org  *string `json:"org,omitempty"`
	Repo *string `json:"repo,omitempty"`
}

// Sanitize keeps the first MaxProjects records, in upstream order, reduced to
// their public fields.
func Sanitize(records []Record) []Project {
	return lo.Map(lo.Slice(records, 0, MaxProjects), func(r Record, _ int) Project {
		return SanitizeRecord(r)
	})
}

// SanitizeRecord projects a single record. LatestDeployments is never nil.
func SanitizeRecord(r Record) Project {
	p := Project{
		ID:                r.ID,
		Name:              r.Name,
		Framework:         r.Framework,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		LatestDeployments: []Deployment{},
	}

	if r.Link != nil {
		p.Link = &Link{Org: r.Link.Org, Repo: r.Link.Repo}
	}

	if r.Targets != nil && r.Targets.Production != nil {
		p.Targets = &Targets{Production: &ProductionTarget{Alias: r.Targets.Production.Alias}}
	}

	if len(r.LatestDeployments) > 0 {
		d := r.LatestDeployments[0]
		p.LatestDeployments = []Deployment{{Alias: d.Alias, URL: d.URL, ReadyState: d.ReadyState}}
	}

	return p
}

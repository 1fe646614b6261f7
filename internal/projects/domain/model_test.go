package domain

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upstreamRecord = `{
	"id": "p1",
	"name": "site",
	"framework": "nextjs",
	"createdAt": 1700000000000,
	"updatedAt": 1700000500000,
	"accountId": "team_secret",
	"env": [{"key": "DATABASE_URL", "value": "postgres://secret"}],
	"link": {"type": "github", "org": "leo", "repo": "site", "repoId": 42, "deployHooks": [{"url": "https://hook"}]},
	"targets": {"production": {"alias": ["site.example.com"], "id": "dpl_1", "meta": {"githubCommitSha": "abc"}}},
	"latestDeployments": [
		{"alias": ["p1.vercel.app"], "url": "p1-abc.vercel.app", "readyState": "READY", "creator": {"email": "me@example.com"}},
		{"alias": [], "url": "p1-old.vercel.app", "readyState": "ERROR"}
	]
}`

func TestSanitizeRecordKeepsOnlyPublicFields(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(upstreamRecord), &r))

	out, err := json.Marshal(SanitizeRecord(r))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))

	assert.ElementsMatch(t,
		[]string{"id", "name", "framework", "createdAt", "updatedAt", "link", "targets", "latestDeployments"},
		lo.Keys(got))
	assert.Equal(t, map[string]any{"org": "leo", "repo": "site"}, got["link"])
	assert.Equal(t, map[string]any{"production": map[string]any{"alias": []any{"site.example.com"}}}, got["targets"])

	deployments := got["latestDeployments"].([]any)
	require.Len(t, deployments, 1)
	assert.Equal(t, map[string]any{
		"alias":      []any{"p1.vercel.app"},
		"url":        "p1-abc.vercel.app",
		"readyState": "READY",
	}, deployments[0])
}

func TestSanitizeRecordAbsentFields(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"id": "p2"}`), &r))

	out, err := json.Marshal(SanitizeRecord(r))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "p2", "latestDeployments": []}`, string(out))
}

func TestSanitizeRecordEmptyDeployments(t *testing.T) {
	p := SanitizeRecord(Record{ID: lo.ToPtr("p3"), LatestDeployments: []Deployment{}})
	assert.NotNil(t, p.LatestDeployments)
	assert.Empty(t, p.LatestDeployments)
}

func TestSanitizeRecordProductionTargetAbsent(t *testing.T) {
	p := SanitizeRecord(Record{Targets: &Targets{}})
	assert.Nil(t, p.Targets)
}

func TestSanitizeTruncatesInOrder(t *testing.T) {
	records := make([]Record, 8)
	for i := range records {
		records[i] = Record{
			ID:        lo.ToPtr(fmt.Sprintf("p%d", i+1)),
			Framework: lo.ToPtr("Next.js"),
			LatestDeployments: []Deployment{{
				Alias:      []string{fmt.Sprintf("p%d.vercel.app", i+1)},
				URL:        lo.ToPtr(fmt.Sprintf("p%d-abc.vercel.app", i+1)),
				ReadyState: lo.ToPtr("READY"),
			}},
		}
	}

	got := Sanitize(records)
	require.Len(t, got, MaxProjects)
	for i, p := range got {
		assert.Equal(t, fmt.Sprintf("p%d", i+1), *p.ID)
		assert.Len(t, p.LatestDeployments, 1)
	}
}

func TestSanitizeShortAndEmptyInput(t *testing.T) {
	assert.Len(t, Sanitize(make([]Record, 3)), 3)

	empty := Sanitize(nil)
	assert.NotNil(t, empty)
	out, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

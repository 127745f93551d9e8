package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	appErrors "github.com/noah-isme/hr-disciplinary-api/pkg/errors"
)

type countingOffenses struct {
	memOffenses
	listCalls int
}

func (m *countingOffenses) List(_ context.Context, filter models.OffenseFilter) ([]models.OffenseClassification, error) {
	m.listCalls++
	var out []models.OffenseClassification
	for _, o := range m.memOffenses {
		if filter.ActiveOnly && !o.Active {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (m *countingOffenses) Create(_ context.Context, o *models.OffenseClassification) error {
	o.ID = "off-new"
	copy := *o
	m.memOffenses[o.ID] = &copy
	return nil
}

func (m *countingOffenses) Update(_ context.Context, o *models.OffenseClassification) error {
	copy := *o
	m.memOffenses[o.ID] = &copy
	return nil
}

type mapCache struct {
	entries map[string][]byte
	deleted []string
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}}
}

func (c *mapCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := c.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *mapCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deleted = append(c.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func newOffenseFixture() (*countingOffenses, *mapCache, *OffenseService) {
	repo := &countingOffenses{memOffenses: memOffenses{
		"off-minor": {ID: "off-minor", Name: "Lateness", Severity: models.SeverityMinor, ApprovalLevel: models.ApprovalHR, Active: true},
	}}
	cache := newMapCache()
	svc := NewOffenseService(repo, cache, OffenseCacheConfig{Enabled: true, TTL: time.Minute}, nil, nil, nil)
	return repo, cache, svc
}

func TestOffenseServiceListUsesCache(t *testing.T) {
	repo, _, svc := newOffenseFixture()
	filter := models.OffenseFilter{ActiveOnly: true}

	first, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, models.ActionVerbalWarning, first[0].DefaultAction)

	second, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestOffenseServiceWritesInvalidateCache(t *testing.T) {
	repo, cache, svc := newOffenseFixture()
	ctx := context.Background()

	_, err := svc.List(ctx, models.OffenseFilter{})
	require.NoError(t, err)

	created, err := svc.Create(ctx, hrManager, dto.UpsertOffenseRequest{
		Name:               "Theft",
		Severity:           models.SeverityGross,
		ApprovalLevel:      models.ApprovalExecutive,
		ImmediateDismissal: true,
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, models.ActionTermination, created.DefaultAction)
	assert.Equal(t, []string{"list:*"}, cache.deleted)

	listed, err := svc.List(ctx, models.OffenseFilter{})
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, 2, repo.listCalls)
}

func TestOffenseServiceUpdate(t *testing.T) {
	repo, _, svc := newOffenseFixture()
	inactive := false

	updated, err := svc.Update(context.Background(), hrManager, "off-minor", dto.UpsertOffenseRequest{
		Name:          "Repeated lateness",
		Severity:      models.SeverityModerate,
		ApprovalLevel: models.ApprovalManager,
		Active:        &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, models.ActionWrittenWarning, updated.DefaultAction)
	assert.Equal(t, "Repeated lateness", repo.memOffenses["off-minor"].Name)

	_, err = svc.Update(context.Background(), hrManager, "missing", dto.UpsertOffenseRequest{
		Name: "x", Severity: models.SeverityMinor, ApprovalLevel: models.ApprovalHR,
	})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestOffenseServiceWritesRequireManager(t *testing.T) {
	_, _, svc := newOffenseFixture()
	req := dto.UpsertOffenseRequest{Name: "x", Severity: models.SeverityMinor, ApprovalLevel: models.ApprovalHR}

	_, err := svc.Create(context.Background(), hrOfficer, req)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	req.Severity = "catastrophic"
	_, err = svc.Create(context.Background(), hrManager, req)
	assert.True(t, appErrors.IsValidation(err))
}

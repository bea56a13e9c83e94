package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

func newWorkspaceService(env *testEnv, gen *fakeGenerator) *WorkspaceService {
	return NewWorkspaceService(env.agents, env.touchpoints, env.sessions, env.settings, gen, zap.NewNop())
}

func TestUpdateSettings(t *testing.T) {
	env := newTestEnv(t)
	svc := newWorkspaceService(env, &fakeGenerator{})
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", settings.Language)
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, domain.PlanFree, settings.Subscription)

	updated, err := svc.UpdateSettings(ctx, &domain.UpdateSettingsRequest{
		Language:     "fr",
		Currency:     "EUR",
		Subscription: domain.PlanProfessional,
	})
	require.NoError(t, err)
	assert.Equal(t, "fr", updated.Language)
	assert.Equal(t, "EUR", updated.Currency)
	assert.Equal(t, domain.PlanProfessional, updated.Subscription)

	// Partial update keeps the rest.
	updated, err = svc.UpdateSettings(ctx, &domain.UpdateSettingsRequest{Currency: "GBP"})
	require.NoError(t, err)
	assert.Equal(t, "fr", updated.Language)
	assert.Equal(t, "GBP", updated.Currency)

	// Unsupported codes normalize to the defaults.
	updated, err = svc.UpdateSettings(ctx, &domain.UpdateSettingsRequest{Language: "xx", Currency: "XXX"})
	require.NoError(t, err)
	assert.Equal(t, "en", updated.Language)
	assert.Equal(t, "USD", updated.Currency)

	_, err = svc.UpdateSettings(ctx, &domain.UpdateSettingsRequest{Subscription: "Platinum"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestGetStatsAttributesRevenue(t *testing.T) {
	env := newTestEnv(t)
	agent := env.createAgent(t, "Concierge")
	tpSvc := newTouchpointService(env)
	svc := newWorkspaceService(env, &fakeGenerator{})
	ctx := context.Background()

	tp, err := tpSvc.Deploy(ctx, &domain.CreateTouchpointRequest{
		Name: "Poster", Type: domain.SurfacePoster, AgentID: agent.ID,
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = tpSvc.ResolveScan(ctx, tp.TrackingID)
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalAgents)
	assert.Equal(t, 1, stats.TotalTouchpoints)
	assert.Equal(t, 3, stats.TotalScans)
	assert.Equal(t, "USD", stats.Currency)
	assert.InDelta(t, 3*45.0, stats.AttributedRevenue, 0.001)

	// Revenue converts through the workspace currency rate.
	_, err = svc.UpdateSettings(ctx, &domain.UpdateSettingsRequest{Currency: "EUR"})
	require.NoError(t, err)

	stats, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", stats.Currency)
	assert.InDelta(t, 3*45.0*0.92, stats.AttributedRevenue, 0.001)
}

func TestTranslateContentDegrades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	gen := &fakeGenerator{translated: "Bonjour {name}"}
	svc := newWorkspaceService(env, gen)

	assert.Equal(t, "Hello {name}", svc.TranslateContent(ctx, "Hello {name}", "en"))
	assert.Equal(t, "Hello {name}", svc.TranslateContent(ctx, "Hello {name}", ""))
	assert.Equal(t, "Bonjour {name}", svc.TranslateContent(ctx, "Hello {name}", "fr"))

	gen = &fakeGenerator{translateErr: errors.New("upstream 503")}
	svc = newWorkspaceService(env, gen)
	assert.Equal(t, "Hello {name}", svc.TranslateContent(ctx, "Hello {name}", "fr"))

	gen = &fakeGenerator{translated: ""}
	svc = newWorkspaceService(env, gen)
	assert.Equal(t, "Hello {name}", svc.TranslateContent(ctx, "Hello {name}", "fr"))
}

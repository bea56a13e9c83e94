package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

func TestAgentRoundTrip(t *testing.T) {
	repo := NewAgentRepository(newTestDB(t))

	agent := &domain.AgentProfile{
		Name:           "Concierge",
		Status:         domain.AgentStatusActive,
		Industry:       "Hospitality",
		Voice:          domain.VoiceCasual,
		ServiceCatalog: "Event catering",
		Documents:      []string{"menu.pdf", "pricing.xlsx"},
	}
	require.NoError(t, repo.Create(agent))
	assert.NotEmpty(t, agent.ID)

	loaded, err := repo.Get(agent.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Concierge", loaded.Name)
	assert.Equal(t, domain.VoiceCasual, loaded.Voice)
	assert.Equal(t, []string{"menu.pdf", "pricing.xlsx"}, loaded.Documents)
}

func TestAgentGetMissing(t *testing.T) {
	repo := NewAgentRepository(newTestDB(t))

	loaded, err := repo.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestAgentListAndCount(t *testing.T) {
	repo := NewAgentRepository(newTestDB(t))

	for _, name := range []string{"First", "Second"} {
		require.NoError(t, repo.Create(&domain.AgentProfile{
			Name: name, Status: domain.AgentStatusActive, Industry: "Retail", Voice: domain.VoiceProfessional,
		}))
	}

	agents, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, agents, 2)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAgentDelete(t *testing.T) {
	repo := NewAgentRepository(newTestDB(t))

	agent := &domain.AgentProfile{
		Name: "Concierge", Status: domain.AgentStatusActive, Industry: "Retail", Voice: domain.VoiceProfessional,
	}
	require.NoError(t, repo.Create(agent))

	require.NoError(t, repo.Delete(agent.ID))

	loaded, err := repo.Get(agent.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	assert.Error(t, repo.Delete(agent.ID))
}

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

func TestGroundingBuildIsDeterministic(t *testing.T) {
	b := NewGroundingBuilder("gemini-3-pro-preview")
	agent := &domain.AgentProfile{
		Name:           "Concierge",
		Industry:       "Hospitality",
		Voice:          domain.VoiceCasual,
		ServiceCatalog: "Event catering",
		Documents:      []string{"menu.pdf", "pricing.xlsx"},
	}

	first := b.Build(agent, "es")
	second := b.Build(agent, "es")

	assert.Equal(t, first, second)
	assert.Equal(t, "gemini-3-pro-preview", first.Model)
	assert.Equal(t, float32(0.7), first.Temperature)
}

func TestGroundingBuildInterpolatesProfile(t *testing.T) {
	b := NewGroundingBuilder("gemini-3-pro-preview")
	agent := &domain.AgentProfile{
		Name:           "Concierge",
		Industry:       "Hospitality",
		Voice:          domain.VoiceCasual,
		ServiceCatalog: "Event catering, private dining",
	}

	bundle := b.Build(agent, "es")

	assert.Contains(t, bundle.SystemInstruction, "You are Concierge, an intelligent digital brand ambassador for a Hospitality business.")
	assert.Contains(t, bundle.SystemInstruction, "Your voice profile is strictly casual.")
	assert.Contains(t, bundle.SystemInstruction, "Primary Catalog: Event catering, private dining")
}

func TestGroundingBuildLanguageOverrideClause(t *testing.T) {
	b := NewGroundingBuilder("gemini-3-pro-preview")
	agent := &domain.AgentProfile{Name: "Concierge", Industry: "Hospitality"}

	bundle := b.Build(agent, "fr")

	assert.Contains(t, bundle.SystemInstruction, `CRITICAL: YOU MUST RESPOND ONLY IN THE LANGUAGE CODE: "fr".`)
	assert.Contains(t, bundle.SystemInstruction, `Even if the user speaks to you in a different language, translate your logic and respond in "fr".`)
	// The target code also closes the strict rules.
	assert.GreaterOrEqual(t, strings.Count(bundle.SystemInstruction, `"fr"`), 3)
}

func TestGroundingBuildDefaults(t *testing.T) {
	b := NewGroundingBuilder("gemini-3-pro-preview")
	agent := &domain.AgentProfile{Name: "Concierge", Industry: "Hospitality", Voice: "sassy"}

	bundle := b.Build(agent, "")

	assert.Contains(t, bundle.SystemInstruction, "Your voice profile is strictly professional.")
	assert.Contains(t, bundle.SystemInstruction, `LANGUAGE CODE: "en"`)
	assert.Contains(t, bundle.SystemInstruction, "Primary Catalog: General professional services")
	assert.Contains(t, bundle.SystemInstruction, "Specialized Intelligence: Standard business logic")
}

func TestGroundingBuildEnumeratesDocuments(t *testing.T) {
	b := NewGroundingBuilder("gemini-3-pro-preview")
	agent := &domain.AgentProfile{
		Name:      "Concierge",
		Industry:  "Hospitality",
		Documents: []string{"menu.pdf", "pricing.xlsx"},
	}

	bundle := b.Build(agent, "en")

	assert.Contains(t, bundle.SystemInstruction,
		"Intelligence extracted from uploaded business documents (menu.pdf, pricing.xlsx): Highly specific business context applied.")
	assert.NotContains(t, bundle.SystemInstruction, "Standard business logic")
}

package service

import (
	"fmt"
	"strings"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

// groundingTemperature is a generation parameter carried on the bundle; it is
// not part of the bundle's determinism guarantee.
const groundingTemperature float32 = 0.7

// Defaults substituted when an agent has no catalog or documents.
const (
	defaultCatalog      = "General professional services"
	defaultIntelligence = "Standard business logic"
)

const groundingTemplate = `You are %s, an intelligent digital brand ambassador for a %s business.
Your voice profile is strictly %s.

CRITICAL: YOU MUST RESPOND ONLY IN THE LANGUAGE CODE: "%s".
Even if the user speaks to you in a different language, translate your logic and respond in "%s".

KNOWLEDGE BASE:
- Primary Catalog: %s
- Specialized Intelligence: %s

OBJECTIVE:
Act as the physical-to-digital bridge. A customer just scanned a physical touchpoint and needs assistance.
Qualify them as a lead and guide them towards a conversion (meeting, order, or proposal).

ENGAGEMENT FLOW:
1. Warm opening acknowledging their interest.
2. Discovery: Ask exactly ONE clarifying question about their specific needs.
3. Value Mapping: Once needs are clear, reference the catalog/documents to provide a solution.
4. Offer/Convert: Suggest the next logical step.

STRICT RULES:
- Max 2 sentences per response to keep the mobile experience tight.
- DO NOT break character.
- Reference specific services from the catalog whenever possible.
- If you don't know the exact translation for a business term, use the most professional equivalent in "%s".`

// GroundingBuilder derives instruction bundles from agent profiles. Build is
// a pure function of the profile and target language; bundles are recomputed
// per call and never cached, so a language switch mid-conversation regrounds
// every subsequent turn without touching prior ones.
type GroundingBuilder struct {
	// Model is the downstream model identifier stamped onto every bundle.
	Model string
}

// NewGroundingBuilder creates a grounding builder for a model identifier.
func NewGroundingBuilder(model string) *GroundingBuilder {
	return &GroundingBuilder{Model: model}
}

// Build derives the instruction bundle for one agent and target language.
// Document names are interpolated into the instruction verbatim; that is a
// deliberate transparency tradeoff and a known data-exposure surface if
// document names are ever sensitive.
func (b *GroundingBuilder) Build(agent *domain.AgentProfile, targetLanguage string) domain.GroundingBundle {
	voice := agent.Voice
	if !domain.KnownVoice(voice) {
		voice = domain.VoiceProfessional
	}

	if targetLanguage == "" {
		targetLanguage = "en"
	}

	catalog := agent.ServiceCatalog
	if catalog == "" {
		catalog = defaultCatalog
	}

	intelligence := defaultIntelligence
	if len(agent.Documents) > 0 {
		intelligence = fmt.Sprintf(
			"Intelligence extracted from uploaded business documents (%s): Highly specific business context applied.",
			strings.Join(agent.Documents, ", "))
	}

	instruction := fmt.Sprintf(groundingTemplate,
		agent.Name, agent.Industry, voice,
		targetLanguage, targetLanguage,
		catalog, intelligence,
		targetLanguage)

	return domain.GroundingBundle{
		SystemInstruction: instruction,
		Temperature:       groundingTemperature,
		Model:             b.Model,
	}
}

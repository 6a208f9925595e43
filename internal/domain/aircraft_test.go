package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIdentifier(t *testing.T) {
	t.Run("mod substring routes to modification", func(t *testing.T) {
		id := ClassifyIdentifier("mod 24591")
		assert.Equal(t, KindModification, id.Kind)
		assert.Equal(t, "mod 24591", id.Text)
	})

	t.Run("classification is case-insensitive", func(t *testing.T) {
		assert.Equal(t, KindModification, ClassifyIdentifier("Mod 24591").Kind)
		assert.Equal(t, KindModification, ClassifyIdentifier("MODIFICATION 161").Kind)
	})

	t.Run("everything else routes to service bulletin", func(t *testing.T) {
		id := ClassifyIdentifier("A320-57-1089")
		assert.Equal(t, KindServiceBulletin, id.Kind)
	})
}

func TestParseAppliedIdentifiers(t *testing.T) {
	t.Run("blank markers yield no identifiers", func(t *testing.T) {
		for _, raw := range []string{"", "  ", "none", "None", "N/A", "n/a"} {
			assert.Empty(t, ParseAppliedIdentifiers(raw), "raw=%q", raw)
		}
	})

	t.Run("comma-separated list is split and trimmed", func(t *testing.T) {
		applied := ParseAppliedIdentifiers(" mod 24591 , A320-57-1089 ")
		assert.Len(t, applied, 2)
		assert.Equal(t, AppliedIdentifier{Kind: KindModification, Text: "mod 24591"}, applied[0])
		assert.Equal(t, AppliedIdentifier{Kind: KindServiceBulletin, Text: "A320-57-1089"}, applied[1])
	})

	t.Run("empty segments are dropped", func(t *testing.T) {
		applied := ParseAppliedIdentifiers("mod 24591,,")
		assert.Len(t, applied, 1)
	})
}

func TestVerdictLabel(t *testing.T) {
	assert.Equal(t, "✅ Affected", VerdictAffected.Label())
	assert.Equal(t, "❌ Not Affected", VerdictNotAffected.Label())
	assert.Equal(t, "❌ Not applicable", VerdictNotApplicable.Label())
}

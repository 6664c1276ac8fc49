package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7ammad/saudi-standards-api/internal/records"
	"github.com/7ammad/saudi-standards-api/internal/segmenter"
)

func TestSection(t *testing.T) {
	ctx := records.Context{Standard: "HCIS_SAF", DirectiveCode: "SAF-02", Domain: "safety"}
	seg := segmenter.New()

	t.Run("emits one record per explicit clause", func(t *testing.T) {
		sec := map[string]any{
			"code":  "3.1",
			"title": "Fire Protection",
			"clauses": []any{
				map[string]any{"clauseId": "3.1.1", "text": "Extinguishers at every exit."},
				map[string]any{"clauseId": "3.1.2", "text": "Hydrants every 60 metres."},
			},
		}

		reqs := Section(sec, ctx, seg)

		require.Len(t, reqs, 2)
		assert.Equal(t, "3.1", reqs[0].SectionCode)
		assert.Equal(t, "3.1.1", reqs[0].ClauseID)
		assert.Equal(t, "HCIS_SAF SAF-02 3.1 3.1.2", reqs[1].Reference)
	})

	t.Run("clause title falls back to section title", func(t *testing.T) {
		sec := map[string]any{
			"code":  "3.2",
			"title": "Detection",
			"clauses": []any{
				map[string]any{"clauseId": "3.2.1", "text": "Smoke detectors in all rooms."},
			},
		}

		reqs := Section(sec, ctx, seg)

		require.Len(t, reqs, 1)
		assert.Equal(t, "Detection", reqs[0].Title)
	})

	t.Run("segments free text when no clauses exist", func(t *testing.T) {
		sec := map[string]any{
			"code": "3.3",
			"text": "3.3.1 Alarms must be audible everywhere. 3.3.2 Panels must be monitored continuously.",
		}

		reqs := Section(sec, ctx, seg)

		require.Len(t, reqs, 2)
		assert.Equal(t, "3.3.1", reqs[0].ClauseID)
	})

	t.Run("empty section yields nothing", func(t *testing.T) {
		assert.Empty(t, Section(map[string]any{"code": "3.4"}, ctx, seg))
	})
}

func TestObjectList(t *testing.T) {
	t.Run("first non-empty key wins", func(t *testing.T) {
		obj := map[string]any{
			"clauses":      []any{},
			"requirements": []any{map[string]any{"a": 1}},
		}
		list := ObjectList(obj, "clauses", "requirements")
		require.Len(t, list, 1)
	})

	t.Run("missing keys return nil", func(t *testing.T) {
		assert.Nil(t, ObjectList(map[string]any{}, "clauses"))
	})
}

package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishisahayak/pkg/models"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind LineKind
		text string
	}{
		{name: "numbered line", line: "1. Apply zinc sulphate", kind: NumberedLine, text: "Apply zinc sulphate"},
		{name: "multi digit number", line: "12. Check the drainage", kind: NumberedLine, text: "Check the drainage"},
		{name: "no space after period", line: "1.Apply fertilizer", kind: OtherLine, text: "1.Apply fertilizer"},
		{name: "plain prose", line: "Your soil needs attention.", kind: OtherLine, text: "Your soil needs attention."},
		{name: "bullet is not a step", line: "- Apply fertilizer", kind: OtherLine, text: "- Apply fertilizer"},
		{name: "empty line", line: "", kind: OtherLine, text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := ClassifyLine(tt.line)
			assert.Equal(t, tt.kind, cl.Kind)
			assert.Equal(t, tt.text, cl.Text)
		})
	}
}

func TestExtractActionPlan(t *testing.T) {
	t.Run("numbered lines separated by prose", func(t *testing.T) {
		raw := "Here is my advice.\n\n1. Do a soil test first\nThis matters because of zinc.\n2. Apply zinc sulphate at 25kg per hectare\n\nGood luck!"

		plan := ExtractActionPlan(raw, 5)

		require.Len(t, plan, 2)
		assert.Equal(t, 1, plan[0].Step)
		assert.Equal(t, "Do a soil test first", plan[0].Action)
		assert.Equal(t, models.PriorityHigh, plan[0].Priority)
		assert.Equal(t, 2, plan[1].Step)
		assert.Equal(t, models.PriorityHigh, plan[1].Priority)
	})

	t.Run("steps renumbered contiguously regardless of source numbering", func(t *testing.T) {
		raw := "3. First thing\n7. Second thing\n9. Third thing"

		plan := ExtractActionPlan(raw, 5)

		require.Len(t, plan, 3)
		for i, item := range plan {
			assert.Equal(t, i+1, item.Step)
		}
	})

	t.Run("fourth item onward is medium priority", func(t *testing.T) {
		raw := "1. a\n2. b\n3. c\n4. d\n5. e"

		plan := ExtractActionPlan(raw, 5)

		require.Len(t, plan, 5)
		assert.Equal(t, models.PriorityHigh, plan[2].Priority)
		assert.Equal(t, models.PriorityMedium, plan[3].Priority)
		assert.Equal(t, models.PriorityMedium, plan[4].Priority)
	})

	t.Run("truncates at max items", func(t *testing.T) {
		raw := "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g"

		plan := ExtractActionPlan(raw, 4)

		require.Len(t, plan, 4)
		assert.Equal(t, 4, plan[3].Step)
	})

	t.Run("zero max falls back to default", func(t *testing.T) {
		raw := "1. a\n2. b\n3. c\n4. d\n5. e\n6. f"

		plan := ExtractActionPlan(raw, 0)

		assert.Len(t, plan, DefaultMaxActionItems)
	})

	t.Run("numbered line with empty text is skipped", func(t *testing.T) {
		raw := "1.  \n2. Real step"

		plan := ExtractActionPlan(raw, 5)

		require.Len(t, plan, 1)
		assert.Equal(t, 1, plan[0].Step)
		assert.Equal(t, "Real step", plan[0].Action)
	})

	t.Run("no numbered lines yields empty plan", func(t *testing.T) {
		plan := ExtractActionPlan("Just prose, no steps at all.", 5)
		assert.Empty(t, plan)
	})
}

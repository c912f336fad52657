package advisory

import (
	"regexp"
	"strings"

	"github.com/krishisahayak/pkg/models"
)

// DefaultMaxActionItems caps the action plan length when callers do not
// specify their own limit.
const DefaultMaxActionItems = 5

// highPriorityItems is how many leading items (by discovery order) are
// marked High; everything after is Medium.
const highPriorityItems = 3

var numberedLinePattern = regexp.MustCompile(`^(\d+)\.\s+(.*)`)

// LineKind tags the result of classifying one line of oracle output.
type LineKind int

const (
	// OtherLine is any line that carries no leading step number. These lines
	// stay in the display text but contribute nothing to the action plan.
	OtherLine LineKind = iota
	// NumberedLine starts with digits, a period and whitespace.
	NumberedLine
)

// ClassifiedLine is the tagged form of a single advisory line.
type ClassifiedLine struct {
	Kind LineKind
	Text string // remainder with the number prefix stripped and trimmed
}

// ClassifyLine tags a single line of raw advisory text.
func ClassifyLine(line string) ClassifiedLine {
	if m := numberedLinePattern.FindStringSubmatch(line); m != nil {
		return ClassifiedLine{Kind: NumberedLine, Text: strings.TrimSpace(m[2])}
	}
	return ClassifiedLine{Kind: OtherLine, Text: line}
}

// ExtractActionPlan scans raw advisory text in line order and returns the
// prioritized steps found in numbered lines. Step is the 1-based ordinal of
// the item among numbered lines, so plans are always contiguously numbered
// regardless of how much prose surrounds them. The first three items are
// High priority, the rest Medium. Output is truncated to maxItems.
func ExtractActionPlan(raw string, maxItems int) []models.ActionItem {
	if maxItems <= 0 {
		maxItems = DefaultMaxActionItems
	}

	items := make([]models.ActionItem, 0, maxItems)
	for _, line := range strings.Split(raw, "\n") {
		cl := ClassifyLine(line)
		if cl.Kind != NumberedLine || cl.Text == "" {
			continue
		}

		priority := models.PriorityMedium
		if len(items) < highPriorityItems {
			priority = models.PriorityHigh
		}
		items = append(items, models.ActionItem{
			Step:     len(items) + 1,
			Action:   cl.Text,
			Priority: priority,
		})
		if len(items) == maxItems {
			break
		}
	}
	return items
}

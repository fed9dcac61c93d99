package badge

import "strings"

const DefaultCategoryColor = "#6B7280"

var categoryColors = map[string]string{
	"VIP":      "#FFD700",
	"Premium":  "#8B5CF6",
	"Standard": "#3B82F6",
	"Student":  "#10B981",
	"Staff":    "#EF4444",
	"Speaker":  "#F59E0B",
	"Sponsor":  "#EC4899",
	"Media":    "#06B6D4",
}

// CategoryColor matches category names case-insensitively.
func CategoryColor(category string) string {
	name := strings.TrimSpace(category)
	if c, ok := categoryColors[name]; ok {
		return c
	}
	for k, c := range categoryColors {
		if strings.EqualFold(k, name) {
			return c
		}
	}
	return DefaultCategoryColor
}

func CategoryColors() map[string]string {
	out := make(map[string]string, len(categoryColors))
	for k, v := range categoryColors {
		out[k] = v
	}
	return out
}

package knowledge

import (
	"sort"
	"strings"

	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/models"
)

// maxSelected caps how many catalog endpoints one KNOWLEDGE round queries.
const maxSelected = 5

// roleAffinity weights catalog categories per detected role. Categories
// not listed score zero affinity for that role.
var roleAffinity = map[models.Role]map[string]float64{
	models.RolePlanner: {
		config.CategoryKnowledge:   0.3,
		config.CategoryResearch:    0.2,
		config.CategoryDevelopment: 0.1,
	},
	models.RoleCoder: {
		config.CategoryDevelopment: 0.4,
		config.CategoryKnowledge:   0.1,
	},
	models.RoleCritic: {
		config.CategoryDevelopment: 0.3,
		config.CategoryResearch:    0.2,
	},
	models.RoleResearcher: {
		config.CategoryResearch:  0.4,
		config.CategoryKnowledge: 0.3,
		config.CategoryData:      0.2,
	},
	models.RoleAnalyzer: {
		config.CategoryData:     0.4,
		config.CategoryResearch: 0.3,
	},
	models.RoleSynthesizer: {
		config.CategoryKnowledge: 0.3,
		config.CategoryResearch:  0.3,
		config.CategoryData:      0.2,
	},
	models.RoleUIArchitect: {
		config.CategoryUI:          0.4,
		config.CategoryDevelopment: 0.2,
	},
	models.RoleUIImplementer: {
		config.CategoryUI:          0.4,
		config.CategoryDevelopment: 0.3,
	},
	models.RoleUIRefiner: {
		config.CategoryUI: 0.5,
	},
}

// scoredEndpoint pairs a catalog entry with its relevance score.
type scoredEndpoint struct {
	Endpoint config.APIEndpoint
	Score    float64
}

// Select ranks the catalog against the goal text and role, returning up to
// maxSelected endpoints in descending score order. Ties break by catalog
// order so selection is deterministic. Endpoints with zero keyword overlap
// can still be selected on affinity and reliability alone when the catalog
// has no better match.
func Select(catalog []config.APIEndpoint, goal string, role models.Role) []config.APIEndpoint {
	words := tokenize(goal)

	scored := make([]scoredEndpoint, 0, len(catalog))
	for _, e := range catalog {
		scored = append(scored, scoredEndpoint{Endpoint: e, Score: score(e, words, role)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	n := maxSelected
	if n > len(scored) {
		n = len(scored)
	}
	out := make([]config.APIEndpoint, 0, n)
	for _, s := range scored[:n] {
		out = append(out, s.Endpoint)
	}
	return out
}

// score combines keyword overlap with the goal, role affinity for the
// endpoint's category, and the endpoint's static reliability.
func score(e config.APIEndpoint, goalWords map[string]bool, role models.Role) float64 {
	var overlap float64
	for _, kw := range e.Keywords {
		if goalWords[strings.ToLower(kw)] {
			overlap++
		}
	}
	if len(e.Keywords) > 0 {
		overlap /= float64(len(e.Keywords))
	}

	affinity := roleAffinity[role][e.Category]

	return overlap + affinity + 0.2*e.Reliability
}

func tokenize(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:!?\"'()[]{}")
		if len(w) > 2 {
			words[w] = true
		}
	}
	return words
}

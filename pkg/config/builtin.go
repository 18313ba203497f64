package config

// AuthType classifies how an API endpoint authenticates callers.
type AuthType string

const (
	AuthNone   AuthType = "none"
	AuthAPIKey AuthType = "api_key"
	AuthOAuth  AuthType = "oauth"
)

// IsValid checks the auth type token.
func (a AuthType) IsValid() bool {
	return a == AuthNone || a == AuthAPIKey || a == AuthOAuth
}

// APIEndpoint is one entry of the knowledge API catalog. The catalog is
// loaded once at startup and never mutated at runtime; reliability is a
// static editorial score, not an online estimate.
type APIEndpoint struct {
	Name             string   `yaml:"name"`
	URL              string   `yaml:"url"`
	Category         string   `yaml:"category"`
	Keywords         []string `yaml:"keywords"`
	AuthType         AuthType `yaml:"auth_type"`
	HTTPS            bool     `yaml:"https"`
	CORS             bool     `yaml:"cors"`
	Reliability      float64  `yaml:"reliability"`
	EndpointPatterns []string `yaml:"endpoint_patterns,omitempty"` // ordered alternates
}

// Catalog categories referenced by the role-affinity table in the selector.
const (
	CategoryKnowledge   = "knowledge"
	CategoryDevelopment = "development"
	CategoryResearch    = "research"
	CategoryData        = "data"
	CategoryUI          = "ui"
)

// BuiltinCatalog returns the built-in API registry. Entries use public,
// keyless endpoints wherever possible so a fresh deployment can gather
// knowledge without credentials.
func BuiltinCatalog() []APIEndpoint {
	return []APIEndpoint{
		{
			Name:        "wikipedia-summary",
			URL:         "https://en.wikipedia.org/api/rest_v1/page/summary/Web_development",
			Category:    CategoryKnowledge,
			Keywords:    []string{"definition", "overview", "concept", "history", "explain"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.95,
			EndpointPatterns: []string{
				"https://en.wikipedia.org/w/api.php?action=query&format=json&prop=extracts&titles=Web_development",
			},
		},
		{
			Name:        "duckduckgo-instant",
			URL:         "https://api.duckduckgo.com/?q=software&format=json&no_html=1",
			Category:    CategoryKnowledge,
			Keywords:    []string{"search", "lookup", "question", "answer", "what", "how"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.85,
		},
		{
			Name:        "github-search",
			URL:         "https://api.github.com/search/repositories?q=stars:%3E10000&sort=stars&per_page=5",
			Category:    CategoryDevelopment,
			Keywords:    []string{"code", "repository", "library", "framework", "implementation", "example", "build"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.9,
			EndpointPatterns: []string{
				"https://api.github.com/search/topics?q=development",
			},
		},
		{
			Name:        "stackexchange-search",
			URL:         "https://api.stackexchange.com/2.3/search/advanced?order=desc&sort=relevance&site=stackoverflow&pagesize=5",
			Category:    CategoryDevelopment,
			Keywords:    []string{"error", "bug", "fix", "debug", "stack", "exception", "code"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.85,
		},
		{
			Name:        "npm-registry",
			URL:         "https://registry.npmjs.org/-/v1/search?text=framework&size=5",
			Category:    CategoryDevelopment,
			Keywords:    []string{"package", "npm", "javascript", "dependency", "module", "node"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.9,
		},
		{
			Name:        "pypi-search",
			URL:         "https://pypi.org/pypi/requests/json",
			Category:    CategoryDevelopment,
			Keywords:    []string{"python", "pip", "package", "library", "data"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        false,
			Reliability: 0.9,
		},
		{
			Name:        "arxiv-query",
			URL:         "http://export.arxiv.org/api/query?search_query=all:machine+learning&max_results=3",
			Category:    CategoryResearch,
			Keywords:    []string{"paper", "research", "study", "algorithm", "machine", "learning", "analysis"},
			AuthType:    AuthNone,
			HTTPS:       false,
			CORS:        false,
			Reliability: 0.8,
			EndpointPatterns: []string{
				"https://export.arxiv.org/api/query?search_query=all:machine+learning&max_results=3",
			},
		},
		{
			Name:        "crossref-works",
			URL:         "https://api.crossref.org/works?rows=3",
			Category:    CategoryResearch,
			Keywords:    []string{"citation", "journal", "doi", "publication", "academic", "research"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.85,
		},
		{
			Name:        "hackernews-top",
			URL:         "https://hacker-news.firebaseio.com/v0/topstories.json",
			Category:    CategoryResearch,
			Keywords:    []string{"news", "trend", "discussion", "technology", "startup"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.9,
		},
		{
			Name:        "openlibrary-search",
			URL:         "https://openlibrary.org/search.json?q=software+engineering&limit=3",
			Category:    CategoryKnowledge,
			Keywords:    []string{"book", "reference", "documentation", "learn", "guide"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.8,
		},
		{
			Name:        "restcountries",
			URL:         "https://restcountries.com/v3.1/all?fields=name,capital,population",
			Category:    CategoryData,
			Keywords:    []string{"country", "geography", "population", "demographic", "region"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.75,
		},
		{
			Name:        "open-meteo",
			URL:         "https://api.open-meteo.com/v1/forecast?latitude=52.52&longitude=13.41&current_weather=true",
			Category:    CategoryData,
			Keywords:    []string{"weather", "forecast", "climate", "temperature", "data"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.85,
		},
		{
			Name:        "exchangerate-host",
			URL:         "https://api.exchangerate.host/latest?base=USD",
			Category:    CategoryData,
			Keywords:    []string{"currency", "exchange", "rate", "finance", "price", "market"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.7,
		},
		{
			Name:        "css-tricks-feed",
			URL:         "https://css-tricks.com/wp-json/wp/v2/posts?per_page=3",
			Category:    CategoryUI,
			Keywords:    []string{"css", "design", "layout", "frontend", "ui", "component", "style", "form"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.7,
		},
		{
			Name:        "fontsource-list",
			URL:         "https://api.fontsource.org/v1/fonts?limit=5",
			Category:    CategoryUI,
			Keywords:    []string{"font", "typography", "ui", "design", "theme"},
			AuthType:    AuthNone,
			HTTPS:       true,
			CORS:        true,
			Reliability: 0.65,
		},
	}
}

package domain

// ResultType classifies a search result for icon selection
type ResultType string

const (
	ResultPage          ResultType = "page"
	ResultComponent     ResultType = "component"
	ResultDocumentation ResultType = "documentation"
	ResultAPI           ResultType = "api"
)

// SearchResult is one entry of the searchable corpus
type SearchResult struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        ResultType `json:"type"`
	URL         string     `json:"url"`
	Category    string     `json:"category"`
}

// NavLink is a single link inside a navigation card
type NavLink struct {
	Label     string `toml:"label"`
	Href      string `toml:"href"`
	AriaLabel string `toml:"aria_label"`
}

// NavGroup is one card of the top navigation
type NavGroup struct {
	Label     string    `toml:"label"`
	BgColor   string    `toml:"bg_color"`
	TextColor string    `toml:"text_color"`
	Links     []NavLink `toml:"links"`
}

// Logo is a partner entry in the logo strip
type Logo struct {
	Title string `toml:"title"`
	Href  string `toml:"href"`
}

package domain

// Project is a showcase card rendered on the home page.
type Project struct {
	Title       string
	Description string
	DemoURL     string
	GithubURL   string
	Tags        []string
}

// ModelInfo is a gallery card for an artifact found on disk.
type ModelInfo struct {
	Name        string
	Description string
	Accuracy    string
	Cached      bool
}

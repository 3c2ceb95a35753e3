package models

// ProfileRecord is the canonical structured representation of a person's
// portfolio-relevant data. Every parser and fetcher in the system produces
// one of these (or a subset of its fields).
type ProfileRecord struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Skills      []string          `json:"skills"`
	Interests   string            `json:"interests"`
	AboutMe     string            `json:"about_me"`
	LinkedInURL string            `json:"linkedin_url"`
	GitHubURL   string            `json:"github_url"`
	Experiences []ExperienceEntry `json:"experiences"`
	Projects    []ProjectEntry    `json:"projects"`
}

// ExperienceEntry is one work-experience block extracted from a resume.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description"`
}

// ProjectEntry is one project block extracted from a resume.
type ProjectEntry struct {
	Title        string `json:"title"`
	Technologies string `json:"technologies,omitempty"`
	Description  string `json:"description"`
}

// AIProfile is the narrower field set produced by the AI-assisted resume
// parser. It intentionally carries no name/email/experience/projects.
type AIProfile struct {
	Skills      string `json:"skills"`
	Interests   string `json:"interests"`
	LinkedInURL string `json:"linkedin_url"`
	AboutMe     string `json:"about_me"`
}

// CombinedProfile is the result of reconciling the heuristic and AI parses
// of the same document. Skills are already de-duplicated, sorted and
// comma-joined at this point.
type CombinedProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Skills      string `json:"skills"`
	Interests   string `json:"interests"`
	AboutMe     string `json:"about_me"`
	LinkedInURL string `json:"linkedin_url"`
	GitHubURL   string `json:"github_url"`
}

// RepoProject is one public repository as returned by the GitHub fetcher.
type RepoProject struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Topics      []string `json:"topics,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
}

// LinkedInProfile is the structured result of fetching a public LinkedIn
// profile page.
type LinkedInProfile struct {
	Name            string `json:"name"`
	Headline        string `json:"headline"`
	Summary         string `json:"summary"`
	Skills          string `json:"skills"`
	ExperienceCount int    `json:"experience_count"`
}

// VideoInfo is the metadata scraped from a YouTube watch page.
type VideoInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PortfolioInput is the compiler's input contract: the fields a rendered
// portfolio page consumes. Missing optional fields render as empty sections.
type PortfolioInput struct {
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Skills       string             `json:"skills"`
	GitHub       string             `json:"github"`
	Interests    string             `json:"interests,omitempty"`
	AboutMe      string             `json:"about_me,omitempty"`
	LinkedInURL  string             `json:"linkedin_url,omitempty"`
	ProfileImage string             `json:"profile_image,omitempty"`
	Profession   string             `json:"profession,omitempty"`
	Projects     []PortfolioProject `json:"projects,omitempty"`
}

// PortfolioProject is one project card on a rendered portfolio page.
type PortfolioProject struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies,omitempty"`
	Image        string `json:"image,omitempty"`
	GitHub       string `json:"github,omitempty"`
	Live         string `json:"live,omitempty"`
}

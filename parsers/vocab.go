package parsers

import "strings"

// techKeywords is the known-technology vocabulary used for keyword-based
// skill matching. Kept as an ordered slice so technology lists extracted
// from project paragraphs come out in a stable order.
var techKeywords = []string{
	"python", "java", "javascript", "js", "typescript", "ts", "c++", "c#",
	"go", "golang", "rust", "ruby", "php", "swift", "kotlin",
	"react", "angular", "vue", "node", "express", "django", "flask",
	"spring", "rails", "gin",
	"sql", "mongodb", "postgresql", "mysql", "sqlite", "redis",
	"aws", "azure", "gcp",
	"docker", "kubernetes", "terraform", "git", "ci/cd", "rest", "graphql", "grpc",
	"html", "css", "sass", "less", "webpack", "babel", "jquery",
	"machine learning", "ai", "artificial intelligence", "data science",
	"tensorflow", "pytorch", "keras", "opencv", "nlp",
	"kafka", "rabbitmq", "elasticsearch", "linux",
}

var techVocabulary = func() map[string]struct{} {
	m := make(map[string]struct{}, len(techKeywords))
	for _, k := range techKeywords {
		m[k] = struct{}{}
	}
	return m
}()

// IsKnownTechnology reports whether the trimmed, lowercased candidate is in
// the known-technology vocabulary.
func IsKnownTechnology(candidate string) bool {
	_, ok := techVocabulary[strings.ToLower(strings.TrimSpace(candidate))]
	return ok
}

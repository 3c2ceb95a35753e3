package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"portfolioai/models"
)

const portfolioSystemPrompt = `You are a professional web developer who creates clean, modern portfolio websites.
Return ONLY the complete HTML document that can be directly rendered in a browser.
The HTML should include embedded CSS and JavaScript.
Do not include any explanation, only return the HTML code.
The HTML must start with <!DOCTYPE html> and include all necessary tags.`

// PortfolioGenerator asks the completion capability for a fully styled,
// self-contained portfolio page. The template-based compiler in the
// templates package is the deterministic alternative.
type PortfolioGenerator struct {
	completer Completer
	logger    *zap.Logger
}

// NewPortfolioGenerator creates an AI portfolio generator.
func NewPortfolioGenerator(completer Completer, logger *zap.Logger) *PortfolioGenerator {
	return &PortfolioGenerator{completer: completer, logger: logger}
}

// Generate returns a complete HTML document for the given profile.
func (g *PortfolioGenerator) Generate(ctx context.Context, input models.PortfolioInput) (string, error) {
	prompt := buildPortfolioPrompt(input)

	html, err := g.completer.Complete(ctx, portfolioSystemPrompt, prompt, 0.7, 4000)
	if err != nil {
		return "", err
	}

	html = stripCodeFences(html)
	g.logger.Info("portfolio generated",
		zap.String("name", input.Name),
		zap.Int("html_length", len(html)),
	)
	return html, nil
}

func buildPortfolioPrompt(input models.PortfolioInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Generate a complete HTML page for a portfolio website. The page should:
1. Use only HTML, CSS (include in a <style> tag), and vanilla JavaScript (include in a <script> tag)
2. Be a single, self-contained file that can be rendered directly in a browser
3. Include all content directly in the HTML (no external imports or frameworks)
4. Use modern CSS features for layout and styling
5. Be responsive and mobile-friendly

Use the following information to create the portfolio:

User Information:
Name: %s
Profession: %s
Skills/Expertise: %s
Interests: %s
Email: %s
GitHub: %s
LinkedIn: %s
About Me: %s

Projects:
`, input.Name, input.Profession, input.Skills, input.Interests, input.Email, input.GitHub, input.LinkedInURL, input.AboutMe)

	for _, project := range input.Projects {
		fmt.Fprintf(&b, "\nTitle: %s\n", project.Title)
		fmt.Fprintf(&b, "Description: %s\n", project.Description)
		fmt.Fprintf(&b, "Technologies: %s\n", project.Technologies)
		if project.Image != "" {
			fmt.Fprintf(&b, "Image: %s\n", project.Image)
		}
		b.WriteString("---")
	}
	return b.String()
}

// stripCodeFences removes a markdown code fence the model sometimes wraps
// the document in.
func stripCodeFences(html string) string {
	html = strings.TrimSpace(html)
	if !strings.HasPrefix(html, "```") {
		return html
	}
	html = strings.TrimPrefix(html, "```html")
	html = strings.TrimPrefix(html, "```")
	html = strings.TrimSuffix(strings.TrimSpace(html), "```")
	return strings.TrimSpace(html)
}

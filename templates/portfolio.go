// Package templates renders structured profile records into self-contained
// portfolio pages by plain string substitution.
package templates

import (
	"fmt"
	"html"
	"strings"

	"portfolioai/models"
)

// RenderPortfolio compiles a profile into a complete HTML document. It is a
// pure function: missing optional fields render as empty sections, never as
// errors.
func RenderPortfolio(in models.PortfolioInput) string {
	replacer := strings.NewReplacer(
		"{{name}}", html.EscapeString(in.Name),
		"{{about_me}}", html.EscapeString(in.AboutMe),
		"{{interests}}", html.EscapeString(in.Interests),
		"{{email}}", html.EscapeString(in.Email),
		"{{github}}", html.EscapeString(in.GitHub),
		"{{linkedin}}", html.EscapeString(in.LinkedInURL),
		"{{profile_image}}", profileImage(in.ProfileImage),
		"{{skills_html}}", skillCards(in.Skills),
		"{{projects_html}}", projectCards(in.Projects),
	)
	return replacer.Replace(portfolioTemplate)
}

func profileImage(url string) string {
	if url == "" {
		return "https://via.placeholder.com/300"
	}
	return html.EscapeString(url)
}

// skillCards turns the comma-joined skills string into a card per skill.
func skillCards(skills string) string {
	var b strings.Builder
	for _, skill := range strings.Split(skills, ",") {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		fmt.Fprintf(&b, `
        <div class="card">
            <div class="card-info">
                <h3>%s</h3>
            </div>
        </div>
`, html.EscapeString(skill))
	}
	return b.String()
}

func projectCards(projects []models.PortfolioProject) string {
	var b strings.Builder
	for _, p := range projects {
		b.WriteString(`
        <div class="card">`)
		if p.Image != "" {
			fmt.Fprintf(&b, `
            <img src="%s" alt="%s" class="card-image">`,
				html.EscapeString(p.Image), html.EscapeString(p.Title))
		}
		fmt.Fprintf(&b, `
            <div class="card-info">
                <h3>%s</h3>
                <p>%s</p>`,
			html.EscapeString(p.Title), html.EscapeString(p.Description))
		if p.Technologies != "" {
			fmt.Fprintf(&b, `
                <p class="technologies">%s</p>`, html.EscapeString(p.Technologies))
		}
		if p.GitHub != "" {
			fmt.Fprintf(&b, `
                <a href="%s" class="card-link">Code</a>`, html.EscapeString(p.GitHub))
		}
		if p.Live != "" {
			fmt.Fprintf(&b, `
                <a href="%s" class="card-link">Live</a>`, html.EscapeString(p.Live))
		}
		b.WriteString(`
            </div>
        </div>
`)
	}
	return b.String()
}

const portfolioTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{name}} | Portfolio</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
        }

        body {
            line-height: 1.6;
            color: #333;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 0 20px;
        }

        header {
            padding: 20px 0;
            background: white;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }

        nav {
            display: flex;
            justify-content: space-between;
            align-items: center;
        }

        .logo {
            font-size: 1.5rem;
            font-weight: bold;
            color: #333;
            text-decoration: none;
        }

        .nav-links {
            display: flex;
            gap: 30px;
        }

        .nav-links a {
            text-decoration: none;
            color: #666;
            transition: color 0.3s;
        }

        .nav-links a:hover {
            color: #4A90E2;
        }

        .hero {
            padding: 100px 0;
            text-align: center;
            background: white;
        }

        .hero h1 {
            font-size: 3rem;
            margin-bottom: 20px;
        }

        .hero p {
            font-size: 1.25rem;
            color: #666;
            margin-bottom: 30px;
        }

        .cta-button {
            display: inline-block;
            padding: 12px 30px;
            background: #4A90E2;
            color: white;
            text-decoration: none;
            border-radius: 30px;
            transition: background 0.3s;
        }

        .cta-button:hover {
            background: #357ABD;
        }

        .about {
            padding: 100px 0;
            background: #f8f9fa;
        }

        .about-content {
            display: flex;
            align-items: center;
            gap: 50px;
            max-width: 900px;
            margin: 0 auto;
        }

        .about-image {
            width: 300px;
            height: 300px;
            border-radius: 50%;
            object-fit: cover;
            background: #ddd;
        }

        .section-title {
            font-size: 2.5rem;
            text-align: center;
            margin-bottom: 50px;
        }

        .skills, .projects {
            padding: 100px 0;
            background: white;
        }

        .projects {
            background: #f8f9fa;
        }

        .grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 30px;
            margin-top: 50px;
        }

        .card {
            background: white;
            border-radius: 10px;
            overflow: hidden;
            box-shadow: 0 4px 6px rgba(0,0,0,0.1);
            transition: transform 0.3s;
        }

        .card:hover {
            transform: translateY(-5px);
        }

        .card-image {
            width: 100%;
            height: 200px;
            background: #ddd;
            object-fit: cover;
        }

        .card-info {
            padding: 20px;
        }

        .card-info h3 {
            margin-bottom: 10px;
        }

        .card-info p {
            color: #666;
            margin-bottom: 15px;
        }

        .technologies {
            font-size: 0.9rem;
            color: #4A90E2;
        }

        .card-link {
            color: #4A90E2;
            text-decoration: none;
            margin-right: 15px;
        }

        .card-link:hover {
            text-decoration: underline;
        }

        .contact {
            padding: 100px 0;
            background: white;
            text-align: center;
        }

        .social-links {
            display: flex;
            justify-content: center;
            gap: 20px;
            margin-top: 30px;
        }

        .social-links a {
            color: #666;
            font-size: 24px;
            transition: color 0.3s;
        }

        .social-links a:hover {
            color: #4A90E2;
        }

        footer {
            padding: 20px 0;
            text-align: center;
            background: white;
            color: #666;
        }

        @media (max-width: 768px) {
            .about-content {
                flex-direction: column;
                text-align: center;
            }

            .hero h1 {
                font-size: 2.5rem;
            }

            .about-image {
                width: 200px;
                height: 200px;
            }
        }
    </style>
</head>
<body>
    <header>
        <nav class="container">
            <a href="#" class="logo">{{name}}</a>
            <div class="nav-links">
                <a href="#about">About</a>
                <a href="#skills">Skills</a>
                <a href="#projects">Projects</a>
                <a href="#contact">Contact</a>
            </div>
        </nav>
    </header>

    <section class="hero">
        <div class="container">
            <h1>Welcome to My Portfolio</h1>
            <p>I'm a developer passionate about creating amazing digital experiences</p>
            <a href="#projects" class="cta-button">View My Work</a>
        </div>
    </section>

    <section id="about" class="about">
        <div class="container">
            <h2 class="section-title">About Me</h2>
            <div class="about-content">
                <img src="{{profile_image}}" alt="Profile" class="about-image">
                <div class="about-text">
                    <p>{{about_me}}</p>
                    <p>My interests include {{interests}}</p>
                </div>
            </div>
        </div>
    </section>

    <section id="skills" class="skills">
        <div class="container">
            <h2 class="section-title">My Skills</h2>
            <div class="grid">
                {{skills_html}}
            </div>
        </div>
    </section>

    <section id="projects" class="projects">
        <div class="container">
            <h2 class="section-title">My Projects</h2>
            <div class="grid">
                {{projects_html}}
            </div>
        </div>
    </section>

    <section id="contact" class="contact">
        <div class="container">
            <h2 class="section-title">Get in Touch</h2>
            <p>I'm always open to new opportunities and collaborations. Feel free to reach out!</p>
            <div class="social-links">
                <a href="mailto:{{email}}">Email</a>
                <a href="{{github}}">GitHub</a>
                <a href="{{linkedin}}">LinkedIn</a>
            </div>
        </div>
    </section>

    <footer>
        <div class="container">
            <p>&copy; <script>document.write(new Date().getFullYear())</script> {{name}}. All rights reserved.</p>
        </div>
    </footer>
</body>
</html>
`

package database

import "github.com/rpupo63/portfolio-site-backend/models"

// SeedVersion is the schema version of the default content. Raising it makes
// the next Init rewrite every seeded slot.
const SeedVersion = 4

const seededHeroImageURL = "https://picsum.photos/400/400?random=10"

func strPtr(s string) *string { return &s }

func DefaultProjects() []models.Project {
	return []models.Project{
		{
			ID:              1,
			Title:           "EcoTrack AI",
			Description:     "A sustainability monitoring dashboard that uses Gemini to analyze energy consumption patterns.",
			LongDescription: "EcoTrack AI is a comprehensive solution for industrial energy monitoring. It integrates real-time sensor data with the Gemini API to provide predictive maintenance alerts and optimize power usage based on historical patterns. The dashboard features high-performance visualizations and an automated reporting system.",
			Tags:            []string{"React", "Gemini API", "AI"},
			TechStack:       []string{"React 19", "TypeScript", "Tailwind CSS", "Gemini Pro", "Recharts", "Node.js"},
			ImageURL:        "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=800",
			Link:            "https://example.com/demo",
			GithubURL:       strPtr("https://github.com/alexrivera/ecotrack"),
		},
		{
			ID:              2,
			Title:           "Nexus Commerce",
			Description:     "Full-stack e-commerce solution with dynamic inventory management and personalized recommendations.",
			LongDescription: "Nexus Commerce is a next-generation retail platform. It features a custom-built recommendation engine powered by machine learning, a high-concurrency inventory system, and a sleek, mobile-first design. The platform handles thousands of transactions per minute while maintaining sub-second load times.",
			Tags:            []string{"Next.js", "TypeScript", "Fullstack"},
			TechStack:       []string{"Next.js 15", "TypeScript", "MongoDB", "Redux Toolkit", "Stripe API", "AWS Lambda"},
			ImageURL:        "https://images.unsplash.com/photo-1557821552-17105176677c?auto=format&fit=crop&q=80&w=800",
			Link:            "https://example.com/demo",
			GithubURL:       strPtr("https://github.com/alexrivera/nexus"),
		},
		{
			ID:              3,
			Title:           "Visionary UI",
			Description:     "An open-source design system focused on accessibility and motion-first interfaces.",
			LongDescription: "Visionary UI is a community-driven design system that prioritizes WCAG 2.1 compliance and fluid animations. It includes over 50 accessible components, a custom CLI for theme generation, and deep integration with Framer Motion for high-fidelity interactive prototypes.",
			Tags:            []string{"React", "Design", "Frontend"},
			TechStack:       []string{"React", "Framer Motion", "Storybook", "PostCSS", "Aria Kit"},
			ImageURL:        "https://images.unsplash.com/photo-1558655146-d09347e92766?auto=format&fit=crop&q=80&w=800",
			Link:            "https://example.com/demo",
			GithubURL:       strPtr("https://github.com/alexrivera/visionary"),
		},
		{
			ID:              4,
			Title:           "Neural Scribe",
			Description:     "AI-powered technical writing assistant that generates documentation from source code comments.",
			LongDescription: "Neural Scribe utilizes large language models to bridge the gap between code and documentation. It analyzes project structures and extracts meaningful context to generate professional-grade wikis and API references automatically, saving developers hours of manual writing.",
			Tags:            []string{"AI", "TypeScript", "Tooling"},
			TechStack:       []string{"TypeScript", "Gemini Flash", "AST Parser", "Markdown-it", "Vercel AI SDK"},
			ImageURL:        "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&q=80&w=800",
			Link:            "https://example.com/demo",
			GithubURL:       strPtr("https://github.com/alexrivera/scribe"),
		},
	}
}

// DefaultSkills returns the seed skills numbered 1..N in display order
func DefaultSkills() []models.Skill {
	skills := []models.Skill{
		{Name: "React/Next.js", Level: 95, Category: models.SkillCategoryFrontend},
		{Name: "TypeScript", Level: 90, Category: models.SkillCategoryFrontend},
		{Name: "Node.js", Level: 85, Category: models.SkillCategoryBackend},
		{Name: "Gemini SDK", Level: 80, Category: models.SkillCategoryAI},
		{Name: "Tailwind CSS", Level: 98, Category: models.SkillCategoryFrontend},
		{Name: "PostgreSQL", Level: 75, Category: models.SkillCategoryBackend},
		{Name: "AWS/Vercel", Level: 80, Category: models.SkillCategoryTools},
		{Name: "Docker", Level: 70, Category: models.SkillCategoryTools},
	}
	for i := range skills {
		skills[i].ID = int64(i + 1)
	}
	return skills
}

// DefaultMetadata returns the seed owner profile with an empty hero image
func DefaultMetadata() models.PortfolioMetadata {
	return models.PortfolioMetadata{
		Name:     "Alex Rivera",
		Role:     "Senior Full-Stack Engineer & AI Specialist",
		Location: "San Francisco, CA",
		Email:    "alex.rivera@example.com",
		Github:   "https://github.com/alexrivera",
		Linkedin: "https://linkedin.com/in/alexrivera",
		BaseBio:  "I am a passionate developer building the next generation of web applications with a focus on AI integration and exceptional user experiences.",
	}
}

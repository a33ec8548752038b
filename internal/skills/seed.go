package skills

func init() {
	c = buildCatalog(seedSkills())
}

// seedSkills returns the built-in skill catalog.
func seedSkills() []Skill {
	return []Skill{
		// Tech
		{
			ID:            "react-dev",
			Name:          "React Developer",
			Category:      "Frontend Development",
			Description:   "Build modern web applications with React, hooks, and component architecture",
			Icon:          "⚛️",
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 25,
			PassThreshold: 70,
			Tags:          []string{"react", "javascript", "frontend"},
		},
		{
			ID:            "solidity-dev",
			Name:          "Solidity Developer",
			Category:      "Blockchain Development",
			Description:   "Smart contract development on Ethereum and EVM-compatible chains",
			Icon:          "🔗",
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 30,
			PassThreshold: 75,
			Tags:          []string{"solidity", "ethereum", "web3"},
		},
		{
			ID:            "ui-ux-design",
			Name:          "UI/UX Designer",
			Category:      "Design",
			Description:   "User interface and experience design principles and best practices",
			Icon:          "🎨",
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			PassThreshold: 70,
			Tags:          []string{"design", "ux", "accessibility"},
		},
		{
			ID:            "data-scientist",
			Name:          "Data Scientist",
			Category:      "Data Science",
			Description:   "Machine learning, statistics, and data analysis expertise",
			Icon:          "📊",
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 35,
			PassThreshold: 75,
			Tags:          []string{"ml", "statistics", "python"},
		},
		{
			ID:            "cybersecurity",
			Name:          "Cybersecurity Specialist",
			Category:      "Security",
			Description:   "Information security, threat analysis, and security architecture",
			Icon:          "🛡️",
			Difficulty:    DifficultyAdvanced,
			EstimatedMins: 30,
			PassThreshold: 80,
			Tags:          []string{"security", "threat-analysis"},
		},

		// Professional
		{
			ID:            "project-manager",
			Name:          "Project Manager",
			Category:      "Management",
			Description:   "Project planning, execution, and team leadership skills",
			Icon:          "📋",
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			PassThreshold: 70,
			Tags:          []string{"planning", "leadership"},
		},
		{
			ID:            "digital-marketing",
			Name:          "Digital Marketing",
			Category:      "Marketing",
			Description:   "SEO, social media, content marketing, and analytics",
			Icon:          "📱",
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 15,
			PassThreshold: 65,
			Tags:          []string{"seo", "social-media"},
		},
		{
			ID:            "financial-analyst",
			Name:          "Financial Analyst",
			Category:      "Finance",
			Description:   "Financial modeling, analysis, and investment evaluation",
			Icon:          "💰",
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 25,
			PassThreshold: 75,
			Tags:          []string{"finance", "modeling"},
		},

		// Creative
		{
			ID:            "graphic-designer",
			Name:          "Graphic Designer",
			Category:      "Design",
			Description:   "Visual design, branding, and creative problem solving",
			Icon:          "🖼️",
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 20,
			PassThreshold: 70,
			Tags:          []string{"design", "branding"},
		},
		{
			ID:            "content-writer",
			Name:          "Content Writer",
			Category:      "Writing",
			Description:   "Creative writing, copywriting, and content strategy",
			Icon:          "✍️",
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 15,
			PassThreshold: 65,
			Tags:          []string{"writing", "copywriting"},
		},

		// Trade
		{
			ID:            "plumber",
			Name:          "Plumber",
			Category:      "Trade",
			Description:   "Plumbing systems, installation, and repair expertise",
			Icon:          "🔧",
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 25,
			PassThreshold: 75,
			Tags:          []string{"plumbing", "trade"},
		},
		{
			ID:            "electrician",
			Name:          "Electrician",
			Category:      "Trade",
			Description:   "Electrical systems, wiring, and safety protocols",
			Icon:          "⚡",
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 30,
			PassThreshold: 80,
			Tags:          []string{"electrical", "trade"},
		},

		// Health & Wellness
		{
			ID:            "yoga-teacher",
			Name:          "Yoga Teacher",
			Category:      "Health & Wellness",
			Description:   "Yoga instruction, anatomy, and mindfulness practices",
			Icon:          "🧘",
			Difficulty:    DifficultyBeginner,
			EstimatedMins: 20,
			PassThreshold: 70,
			Tags:          []string{"yoga", "wellness"},
		},
		{
			ID:            "nutritionist",
			Name:          "Nutritionist",
			Category:      "Health & Wellness",
			Description:   "Nutrition science, meal planning, and dietary counseling",
			Icon:          "🥗",
			Difficulty:    DifficultyIntermediate,
			EstimatedMins: 25,
			PassThreshold: 75,
			Tags:          []string{"nutrition", "wellness"},
		},
	}
}

package questionbank

var agreeScale = &Scale{Min: 1, Max: 5, MinLabel: "Strongly Disagree", MaxLabel: "Strongly Agree"}

func likert(id, text string, cat Category, scale *Scale) Question {
	s := *scale
	return Question{ID: id, Text: text, Type: TypeLikert, Scale: &s, Categories: []Category{cat}}
}

func choice(id, text string, cat Category, options ...string) Question {
	return Question{ID: id, Text: text, Type: TypeMultipleChoice, Options: options, Categories: []Category{cat}}
}

// seedSections is the built-in Reverse Logistics Planner question bank.
func seedSections() []Section {
	return []Section{
		{
			ID:          "psychometric",
			Title:       "Psychometric Evaluation",
			Description: "Understanding your personality traits and work preferences",
			Questions: []Question{
				likert("interest_1", "I enjoy solving logistical issues related to product returns", CategoryInterest, agreeScale),
				likert("interest_2", "I find sustainability and circular economy concepts fascinating", CategoryInterest, agreeScale),
				likert("personality_1", "I prefer structured, systematic approaches to problem-solving", CategoryPersonality, agreeScale),
				likert("personality_2", "I pay close attention to details and rarely make careless mistakes", CategoryPersonality, agreeScale),
				choice("cognitive_1", "Which approach do you prefer when handling complex processes?", CategoryCognitive,
					"Breaking them into systematic, repeatable steps",
					"Finding creative, innovative solutions each time",
					"Following established best practices",
					"Adapting based on each unique situation",
				),
				likert("motivation_1", "I am motivated by creating efficient, sustainable systems", CategoryMotivation, agreeScale),
			},
		},
		{
			ID:          "technical",
			Title:       "Technical & Aptitude Assessment",
			Description: "Evaluating your technical knowledge and problem-solving abilities",
			Questions: []Question{
				choice("aptitude_1", "If 15% of products are returned monthly and you process 1000 units, how many returns do you handle?", CategoryAptitude,
					"150", "85", "250", "100",
				),
				choice("knowledge_1", "What does RMA stand for in logistics?", CategoryKnowledge,
					"Return Merchandise Authorization",
					"Retail Management Application",
					"Resource Management Analysis",
					"Reverse Material Assessment",
				),
				choice("knowledge_2", "Which is NOT typically part of reverse logistics?", CategoryKnowledge,
					"Product returns processing",
					"Initial product manufacturing",
					"Warranty repairs",
					"Product recycling",
				),
				choice("scenario_1", "A customer wants to return a damaged electronic item. What should be your first step?", CategoryScenario,
					"Issue an immediate refund",
					"Check warranty status and return policy",
					"Send it directly to recycling",
					"Refuse the return due to damage",
				),
				choice("domain_1", "What is the primary goal of reverse logistics?", CategoryDomain,
					"To maximize recovery value from returned products",
					"To prevent all product returns",
					"To increase shipping costs",
					"To reduce customer satisfaction",
				),
			},
		},
		{
			ID:          "wiscar",
			Title:       "WISCAR Framework Analysis",
			Description: "Comprehensive readiness assessment across multiple dimensions",
			Questions: []Question{
				likert("will_1", "I am willing to persist through challenging logistics problems even when solutions aren't immediately obvious", CategoryWill, agreeScale),
				likert("will_2", "I would pursue additional training in logistics software if it meant career advancement", CategoryWill, agreeScale),
				{
					ID:   "interest_3",
					Text: "Rank these work activities from most to least appealing:",
					Type: TypeRanking,
					Options: []string{
						"Analyzing return patterns and trends",
						"Coordinating with multiple departments",
						"Developing process improvements",
						"Managing inventory tracking systems",
					},
					Categories: []Category{CategoryInterest},
				},
				likert("skill_1", "Rate your current proficiency with Excel/spreadsheet analysis", CategorySkill,
					&Scale{Min: 1, Max: 5, MinLabel: "Beginner", MaxLabel: "Expert"}),
				likert("skill_2", "Rate your experience with warehouse management systems", CategorySkill,
					&Scale{Min: 1, Max: 5, MinLabel: "No Experience", MaxLabel: "Highly Experienced"}),
				choice("cognitive_2", "A return rate suddenly spikes 30%. How would you investigate?", CategoryCognitive,
					"Analyze data by product, date, and return reason",
					"Immediately contact all customers",
					"Reduce return policy flexibility",
					"Ignore it until next month",
				),
				likert("ability_1", "I actively seek out new learning opportunities in my field", CategoryAbility, agreeScale),
				choice("real_world_1", "Which daily work environment appeals to you most?", CategoryRealWorld,
					"Desk work with data analysis and system coordination",
					"Field work visiting warehouses and distribution centers",
					"Meeting-heavy collaborative environment",
					"Independent work with minimal supervision",
				),
			},
		},
	}
}

var defaultBank = MustNew(seedSections())

// Default returns the built-in question bank.
func Default() *Bank {
	return defaultBank
}

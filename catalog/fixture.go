package catalog

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedAgents returns the built-in demo catalog. Production deployments
// load their catalog from an external supplier instead.
func SeedAgents() []Agent {
	return []Agent{
		{
			ID:              "1",
			Name:            "WriteBot",
			Description:     "AI-powered writing assistant for content creation",
			LongDescription: "WriteBot is an advanced AI writing assistant that helps with content creation, editing, and proofreading. It can generate blog posts, articles, and social media content based on your input.",
			Capabilities:    []string{"Content creation", "Grammar checking", "Style suggestions", "SEO optimization"},
			Instructions:    "Simply provide a topic or outline, and WriteBot will generate content for you.",
			Examples: []string{
				"Write a blog post about sustainable living",
				"Create a product description for a coffee maker",
				"Draft a professional email to a client",
			},
			Pricing: "$15/month",
			Reviews: []Review{
				{ID: "101", Author: "John Smith", Rating: 5, Comment: "WriteBot has completely transformed my content creation process. Highly recommended!", Date: day(2025, time.January, 15)},
				{ID: "102", Author: "Sarah Johnson", Rating: 4, Comment: "Great tool for overcoming writer's block, though sometimes needs guidance.", Date: day(2025, time.January, 10)},
			},
			Categories: []string{"Writing", "Content Creation", "Productivity"},
		},
		{
			ID:              "2",
			Name:            "CodeAssist",
			Description:     "AI coding assistant for developers",
			LongDescription: "CodeAssist is an intelligent coding assistant that helps developers write, review, and debug code. It supports multiple programming languages and frameworks.",
			Capabilities:    []string{"Code generation", "Bug fixing", "Code optimization", "Documentation"},
			Instructions:    "Describe what you're trying to build or the issue you're facing, and CodeAssist will provide code solutions.",
			Examples: []string{
				"Create a React component for a login form",
				"Fix this bug in my Python function",
				"Optimize this SQL query for better performance",
			},
			Pricing: "$25/month",
			Reviews: []Review{
				{ID: "201", Author: "Michael Chen", Rating: 5, Comment: "As a junior developer, CodeAssist has been like having a senior developer always available to help.", Date: day(2025, time.February, 5)},
				{ID: "202", Author: "Emma Rodriguez", Rating: 4, Comment: "Incredible tool that saves me hours of debugging time every week.", Date: day(2025, time.January, 28)},
			},
			Categories: []string{"Development", "Coding", "Productivity"},
		},
		{
			ID:              "3",
			Name:            "DesignGenius",
			Description:     "AI design assistant for creative projects",
			LongDescription: "DesignGenius helps you create stunning visual designs for various purposes. From logos to social media graphics, this AI assistant makes design accessible to everyone.",
			Capabilities:    []string{"Logo creation", "Social media graphics", "UI/UX suggestions", "Color palette generation"},
			Instructions:    "Describe your design needs, including style preferences and purpose, and DesignGenius will create options for you.",
			Examples: []string{
				"Create a modern logo for a tech startup",
				"Design an Instagram post for a coffee shop",
				"Suggest a color palette for a health and wellness brand",
			},
			Pricing: "$20/month",
			Reviews: []Review{
				{ID: "301", Author: "Alex Turner", Rating: 5, Comment: "As someone with no design background, DesignGenius has been a game-changer for my small business.", Date: day(2025, time.February, 10)},
				{ID: "302", Author: "Priya Patel", Rating: 4, Comment: "Good for quick designs, though sometimes lacks the finesse of a professional designer.", Date: day(2025, time.January, 30)},
			},
			Categories: []string{"Design", "Creative", "Graphics"},
		},
		{
			ID:              "4",
			Name:            "DataAnalyst",
			Description:     "AI data analysis and visualization assistant",
			LongDescription: "DataAnalyst helps you make sense of complex data sets with advanced analysis and beautiful visualizations. Perfect for business intelligence and research purposes.",
			Capabilities:    []string{"Data analysis", "Visualization creation", "Trend identification", "Report generation"},
			Instructions:    "Upload your data or connect to your data source, then ask questions or specify what insights you're looking for.",
			Examples: []string{
				"Analyze my sales data for the past quarter and identify trends",
				"Create a visualization of customer demographics",
				"Generate a monthly performance report for my team",
			},
			Pricing: "$30/month",
			Reviews: []Review{
				{ID: "401", Author: "David Wilson", Rating: 5, Comment: "DataAnalyst has transformed how our marketing team uses data to make decisions.", Date: day(2025, time.February, 15)},
				{ID: "402", Author: "Lisa Campbell", Rating: 4, Comment: "Very powerful tool, though it took some time to learn how to use it effectively.", Date: day(2025, time.February, 1)},
			},
			Categories: []string{"Data", "Analytics", "Business Intelligence"},
		},
		{
			ID:              "5",
			Name:            "HealthCoach",
			Description:     "AI health and wellness assistant",
			LongDescription: "HealthCoach provides personalized nutrition, fitness, and wellness guidance based on your goals and preferences. It adapts to your progress and helps you stay on track.",
			Capabilities:    []string{"Meal planning", "Workout recommendations", "Progress tracking", "Wellness tips"},
			Instructions:    "Share your health goals, preferences, and restrictions, and HealthCoach will provide personalized guidance.",
			Examples: []string{
				"Create a vegetarian meal plan for weight loss",
				"Suggest home workouts for building strength with minimal equipment",
				"Track my sleep patterns and suggest improvements",
			},
			Pricing: "$18/month",
			Reviews: []Review{
				{ID: "501", Author: "Jennifer Lee", Rating: 5, Comment: "HealthCoach has helped me develop better eating habits and stick to my fitness routine.", Date: day(2025, time.February, 20)},
				{ID: "502", Author: "Robert Martinez", Rating: 4, Comment: "Good recommendations, though I wish it had more options for dietary restrictions.", Date: day(2025, time.February, 5)},
			},
			Categories: []string{"Health", "Fitness", "Wellness"},
		},
	}
}

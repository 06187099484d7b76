package catalog

import "lifequest_backend/internal/model"

// achievementDefinitions 成就定义表。
// 表顺序即目录序，推荐排序的并列项按该顺序稳定输出。
var achievementDefinitions = []model.AchievementDefinition{
	// ---- 职业 ----
	{
		ID:                 "first-paycheck",
		Name:               "First Paycheck",
		Description:        "Earn your first paycheck from a real job.",
		Category:           model.CategoryCareer,
		AgeRange:           model.AgeRange{Min: 15, Max: 18, Optimal: 16},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 100, LifeScore: 20, CareerScore: 15, Badge: "earner"},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"career", "responsibility", "money"},
	},
	{
		ID:                 "first-job-offer",
		Name:               "Land a Full-Time Job",
		Description:        "Receive and accept your first full-time job offer.",
		Category:           model.CategoryCareer,
		AgeRange:           model.AgeRange{Min: 18, Max: 30, Optimal: 22},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 250, LifeScore: 40, CareerScore: 35, Title: "Professional"},
		VerificationMethod: model.VerifyDocument,
		Tags:               []string{"career", "ambitious", "milestone"},
	},
	{
		ID:                 "promotion",
		Name:               "Earn a Promotion",
		Description:        "Get promoted to a higher position at work.",
		Category:           model.CategoryCareer,
		AgeRange:           model.AgeRange{Min: 20, Max: 55, Optimal: 28},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 500, LifeScore: 60, CareerScore: 70, Badge: "climber"},
		VerificationMethod: model.VerifyDocument,
		Prerequisites:      []string{"first-job-offer"},
		Tags:               []string{"career", "ambitious", "leadership"},
	},
	{
		ID:                 "career-change",
		Name:               "Successful Career Change",
		Description:        "Transition into a new field and hold the role for six months.",
		Category:           model.CategoryCareer,
		AgeRange:           model.AgeRange{Min: 22, Max: 60, Optimal: 32},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 550, LifeScore: 55, CareerScore: 60},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"career", "risk-tolerant", "growth"},
	},
	{
		ID:                 "ship-major-feature",
		Name:               "Ship a Major Feature",
		Description:        "Lead the delivery of a significant software feature end to end.",
		Category:           model.CategoryCareer,
		AgeRange:           model.AgeRange{Min: 20, Max: 60, Optimal: 27},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 300, CareerScore: 45},
		VerificationMethod: model.VerifyDocument,
		Profession:         "software developer",
		Tags:               []string{"career", "craft", "analytical"},
	},
	{
		ID:                 "tech-conference-talk",
		Name:               "Speak at a Tech Conference",
		Description:        "Deliver a talk at a technology conference or large meetup.",
		Category:           model.CategoryCareer,
		AgeRange:           model.AgeRange{Min: 22, Max: 60, Optimal: 30},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 500, CareerScore: 60, Badge: "speaker"},
		VerificationMethod: model.VerifyPhoto,
		Profession:         "software developer",
		Tags:               []string{"career", "social", "public-speaking"},
	},
	{
		ID:                 "publish-research-paper",
		Name:               "Publish a Research Paper",
		Description:        "Publish a peer-reviewed paper in your field.",
		Category:           model.CategoryEducation,
		AgeRange:           model.AgeRange{Min: 22, Max: 65, Optimal: 29},
		Difficulty:         model.DifficultyLegendary,
		Rewards:            model.Rewards{Experience: 1000, LifeScore: 80, CareerScore: 90, Title: "Published Author"},
		VerificationMethod: model.VerifyDocument,
		Profession:         "scientist",
		Tags:               []string{"education", "analytical", "research"},
	},
	{
		ID:                 "save-a-life",
		Name:               "Save a Life",
		Description:        "Directly contribute to saving a patient's life.",
		Category:           model.CategoryCareer,
		AgeRange:           model.AgeRange{Min: 24, Max: 70, Optimal: 32},
		Difficulty:         model.DifficultyLegendary,
		Rewards:            model.Rewards{Experience: 1200, LifeScore: 100, CareerScore: 90, Title: "Lifesaver"},
		VerificationMethod: model.VerifySelfReport,
		Profession:         "doctor",
		Tags:               []string{"career", "empathetic", "service"},
	},
	{
		ID:                 "teach-a-class",
		Name:               "Teach Your Own Class",
		Description:        "Design and teach a full course or class series.",
		Category:           model.CategoryEducation,
		AgeRange:           model.AgeRange{Min: 21, Max: 65, Optimal: 28},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 280, LifeScore: 35, CareerScore: 30},
		VerificationMethod: model.VerifyPhoto,
		Profession:         "teacher",
		Tags:               []string{"education", "empathetic", "mentoring"},
	},

	// ---- 教育 ----
	{
		ID:                 "graduate-high-school",
		Name:               "Graduate High School",
		Description:        "Complete your secondary education.",
		Category:           model.CategoryEducation,
		AgeRange:           model.AgeRange{Min: 16, Max: 20, Optimal: 18},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 300, LifeScore: 50, Badge: "graduate"},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"education", "milestone", "disciplined"},
	},
	{
		ID:                 "college-degree",
		Name:               "Earn a College Degree",
		Description:        "Complete a bachelor's degree program.",
		Category:           model.CategoryEducation,
		AgeRange:           model.AgeRange{Min: 20, Max: 35, Optimal: 22},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 600, LifeScore: 70, CareerScore: 40, Title: "Graduate"},
		VerificationMethod: model.VerifyPhoto,
		Prerequisites:      []string{"graduate-high-school"},
		Tags:               []string{"education", "disciplined", "milestone"},
	},
	{
		ID:                 "learn-new-language",
		Name:               "Learn a New Language",
		Description:        "Reach conversational fluency in a foreign language.",
		Category:           model.CategoryEducation,
		AgeRange:           model.AgeRange{Min: 12, Max: 80, Optimal: 20},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 450, LifeScore: 45},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"education", "travel", "disciplined", "culture"},
	},
	{
		ID:                 "read-50-books",
		Name:               "Read 50 Books in a Year",
		Description:        "Finish fifty books within twelve months.",
		Category:           model.CategoryEducation,
		AgeRange:           model.AgeRange{Min: 14, Max: 90, Optimal: 25},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 260, LifeScore: 30, Badge: "bookworm"},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"education", "reading", "disciplined"},
	},

	// ---- 健康/健身/营养 ----
	{
		ID:                 "run-first-5k",
		Name:               "Run Your First 5K",
		Description:        "Train for and complete a five kilometer run.",
		Category:           model.CategoryFitness,
		AgeRange:           model.AgeRange{Min: 12, Max: 70, Optimal: 24},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 120, HealthScore: 25, Badge: "runner"},
		VerificationMethod: model.VerifySelfie,
		Tags:               []string{"fitness", "health", "endurance"},
	},
	{
		ID:                 "run-marathon",
		Name:               "Complete a Marathon",
		Description:        "Finish a full 42.2 km marathon.",
		Category:           model.CategoryFitness,
		AgeRange:           model.AgeRange{Min: 18, Max: 60, Optimal: 28},
		Difficulty:         model.DifficultyLegendary,
		Rewards:            model.Rewards{Experience: 1000, HealthScore: 100, LifeScore: 60, Title: "Marathoner"},
		VerificationMethod: model.VerifyPhoto,
		Prerequisites:      []string{"run-first-5k"},
		Tags:               []string{"fitness", "endurance", "disciplined"},
	},
	{
		ID:                 "quit-junk-food",
		Name:               "30 Days Without Junk Food",
		Description:        "Eat no processed junk food for a full month.",
		Category:           model.CategoryNutrition,
		AgeRange:           model.AgeRange{Min: 13, Max: 80, Optimal: 26},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 220, HealthScore: 40},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"nutrition", "health", "disciplined"},
	},
	{
		ID:                 "meal-prep-habit",
		Name:               "Build a Meal Prep Habit",
		Description:        "Prepare your weekly meals in advance for four weeks straight.",
		Category:           model.CategoryNutrition,
		AgeRange:           model.AgeRange{Min: 16, Max: 70, Optimal: 25},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 110, HealthScore: 20},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"nutrition", "health", "planning"},
	},
	{
		ID:                 "meditation-streak",
		Name:               "100 Day Meditation Streak",
		Description:        "Meditate every day for one hundred days.",
		Category:           model.CategoryHealth,
		AgeRange:           model.AgeRange{Min: 14, Max: 90, Optimal: 30},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 480, HealthScore: 55, LifeScore: 30},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"health", "mindfulness", "disciplined", "spiritual"},
	},
	{
		ID:                 "strength-milestone",
		Name:               "Bodyweight Bench Press",
		Description:        "Bench press your own bodyweight with proper form.",
		Category:           model.CategoryFitness,
		AgeRange:           model.AgeRange{Min: 16, Max: 55, Optimal: 24},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 240, HealthScore: 35},
		VerificationMethod: model.VerifySelfie,
		Tags:               []string{"fitness", "strength"},
	},

	// ---- 财务 ----
	{
		ID:                 "first-savings",
		Name:               "Save Your First $1,000",
		Description:        "Build a starter emergency fund of one thousand dollars.",
		Category:           model.CategoryFinancial,
		AgeRange:           model.AgeRange{Min: 15, Max: 30, Optimal: 19},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 130, LifeScore: 25, Badge: "saver"},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"financial", "money", "responsibility"},
	},
	{
		ID:                 "emergency-fund",
		Name:               "Six Month Emergency Fund",
		Description:        "Save six months of living expenses.",
		Category:           model.CategoryFinancial,
		AgeRange:           model.AgeRange{Min: 20, Max: 55, Optimal: 27},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 520, LifeScore: 65, Title: "Prepared"},
		VerificationMethod: model.VerifySelfReport,
		Prerequisites:      []string{"first-savings"},
		Tags:               []string{"financial", "money", "disciplined"},
	},
	{
		ID:                 "first-investment",
		Name:               "Make Your First Investment",
		Description:        "Open an investment account and buy your first asset.",
		Category:           model.CategoryFinancial,
		AgeRange:           model.AgeRange{Min: 18, Max: 45, Optimal: 23},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 140, LifeScore: 20},
		VerificationMethod: model.VerifyDocument,
		Tags:               []string{"financial", "money", "risk-tolerant"},
	},
	{
		ID:                 "debt-free",
		Name:               "Become Debt Free",
		Description:        "Pay off all consumer debt.",
		Category:           model.CategoryFinancial,
		AgeRange:           model.AgeRange{Min: 21, Max: 65, Optimal: 33},
		Difficulty:         model.DifficultyLegendary,
		Rewards:            model.Rewards{Experience: 1100, LifeScore: 100, Title: "Debt Free"},
		VerificationMethod: model.VerifyDocument,
		Tags:               []string{"financial", "money", "disciplined", "freedom"},
	},
	{
		ID:                 "buy-first-home",
		Name:               "Buy Your First Home",
		Description:        "Purchase a home of your own.",
		Category:           model.CategoryFinancial,
		AgeRange:           model.AgeRange{Min: 22, Max: 60, Optimal: 31},
		Difficulty:         model.DifficultyLegendary,
		Rewards:            model.Rewards{Experience: 1200, LifeScore: 110, Badge: "homeowner"},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"financial", "family", "milestone"},
	},

	// ---- 公民 ----
	{
		ID:                 "volunteer-100-hours",
		Name:               "Volunteer 100 Hours",
		Description:        "Give one hundred hours of volunteer service to your community.",
		Category:           model.CategoryCivic,
		AgeRange:           model.AgeRange{Min: 13, Max: 90, Optimal: 22},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 500, CivicScore: 80, LifeScore: 40, Title: "Volunteer"},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"civic", "service", "empathetic"},
	},
	{
		ID:                 "register-to-vote",
		Name:               "Register to Vote",
		Description:        "Register and cast your first vote in an election.",
		Category:           model.CategoryCivic,
		AgeRange:           model.AgeRange{Min: 18, Max: 25, Optimal: 18},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 90, CivicScore: 30, Badge: "voter"},
		VerificationMethod: model.VerifySelfie,
		Tags:               []string{"civic", "responsibility", "community"},
	},
	{
		ID:                 "organize-cleanup",
		Name:               "Organize a Community Cleanup",
		Description:        "Plan and lead a local cleanup event.",
		Category:           model.CategoryCivic,
		AgeRange:           model.AgeRange{Min: 15, Max: 70, Optimal: 24},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 260, CivicScore: 50, LifeScore: 25},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"civic", "environment", "leadership", "community"},
	},

	// ---- 社交/家庭 ----
	{
		ID:                 "host-dinner-party",
		Name:               "Host a Dinner Party",
		Description:        "Cook for and host at least six guests.",
		Category:           model.CategorySocial,
		AgeRange:           model.AgeRange{Min: 18, Max: 80, Optimal: 26},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 100, LifeScore: 20},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"social", "cooking", "hospitality"},
	},
	{
		ID:                 "reconnect-old-friend",
		Name:               "Reconnect With an Old Friend",
		Description:        "Rebuild a friendship that lapsed for over two years.",
		Category:           model.CategorySocial,
		AgeRange:           model.AgeRange{Min: 16, Max: 90, Optimal: 30},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 90, LifeScore: 20},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"social", "empathetic", "friendship"},
	},
	{
		ID:                 "family-tree",
		Name:               "Map Your Family Tree",
		Description:        "Research and document four generations of your family.",
		Category:           model.CategoryFamily,
		AgeRange:           model.AgeRange{Min: 16, Max: 90, Optimal: 35},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 230, LifeScore: 30},
		VerificationMethod: model.VerifyDocument,
		Tags:               []string{"family", "history", "research"},
	},
	{
		ID:                 "mentor-someone",
		Name:               "Mentor Someone for a Year",
		Description:        "Guide a mentee consistently for twelve months.",
		Category:           model.CategoryLeadership,
		AgeRange:           model.AgeRange{Min: 22, Max: 75, Optimal: 32},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 520, LifeScore: 55, CareerScore: 35, Title: "Mentor"},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"leadership", "mentoring", "empathetic"},
	},

	// ---- 旅行/创造 ----
	{
		ID:                 "visit-another-continent",
		Name:               "Visit Another Continent",
		Description:        "Travel to and explore a continent you have never visited.",
		Category:           model.CategoryTravel,
		AgeRange:           model.AgeRange{Min: 16, Max: 80, Optimal: 24},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 280, LifeScore: 40, Badge: "explorer"},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"travel", "adventurous", "culture"},
	},
	{
		ID:                 "solo-trip",
		Name:               "Take a Solo Trip",
		Description:        "Travel alone to an unfamiliar city for at least three days.",
		Category:           model.CategoryTravel,
		AgeRange:           model.AgeRange{Min: 18, Max: 70, Optimal: 23},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 140, LifeScore: 25},
		VerificationMethod: model.VerifySelfie,
		Tags:               []string{"travel", "adventurous", "risk-tolerant", "independence"},
	},
	{
		ID:                 "write-a-book",
		Name:               "Write a Book",
		Description:        "Write and finish a manuscript of at least 50,000 words.",
		Category:           model.CategoryCreative,
		AgeRange:           model.AgeRange{Min: 18, Max: 90, Optimal: 34},
		Difficulty:         model.DifficultyLegendary,
		Rewards:            model.Rewards{Experience: 1000, LifeScore: 85, Title: "Author"},
		VerificationMethod: model.VerifyDocument,
		Tags:               []string{"creative", "writing", "disciplined"},
	},
	{
		ID:                 "learn-instrument",
		Name:               "Learn a Musical Instrument",
		Description:        "Play three full songs on an instrument from scratch.",
		Category:           model.CategoryCreative,
		AgeRange:           model.AgeRange{Min: 10, Max: 90, Optimal: 18},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 250, LifeScore: 30},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"creative", "music", "disciplined"},
	},
	{
		ID:                 "art-exhibition",
		Name:               "Exhibit Your Art",
		Description:        "Show your own work in a gallery or public exhibition.",
		Category:           model.CategoryCreative,
		AgeRange:           model.AgeRange{Min: 18, Max: 90, Optimal: 29},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 520, LifeScore: 50, Badge: "artist"},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"creative", "art", "ambitious"},
	},

	// ---- 创业/领导力 ----
	{
		ID:                 "start-side-business",
		Name:               "Start a Side Business",
		Description:        "Launch a side business and make your first sale.",
		Category:           model.CategoryEntrepreneurship,
		AgeRange:           model.AgeRange{Min: 18, Max: 60, Optimal: 26},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 300, CareerScore: 40, LifeScore: 30},
		VerificationMethod: model.VerifyDocument,
		Tags:               []string{"entrepreneurship", "risk-tolerant", "money", "career"},
	},
	{
		ID:                 "profitable-business",
		Name:               "Run a Profitable Business",
		Description:        "Keep a business profitable for twelve consecutive months.",
		Category:           model.CategoryEntrepreneurship,
		AgeRange:           model.AgeRange{Min: 20, Max: 65, Optimal: 31},
		Difficulty:         model.DifficultyLegendary,
		Rewards:            model.Rewards{Experience: 1300, CareerScore: 100, LifeScore: 80, Title: "Founder"},
		VerificationMethod: model.VerifyDocument,
		Prerequisites:      []string{"start-side-business"},
		Tags:               []string{"entrepreneurship", "risk-tolerant", "ambitious"},
	},
	{
		ID:                 "lead-a-team",
		Name:               "Lead a Team",
		Description:        "Take formal responsibility for a team of three or more.",
		Category:           model.CategoryLeadership,
		AgeRange:           model.AgeRange{Min: 21, Max: 60, Optimal: 29},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 540, CareerScore: 65, Title: "Team Lead"},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"leadership", "career", "ambitious"},
	},

	// ---- 个人成长/精神 ----
	{
		ID:                 "public-speech",
		Name:               "Give a Public Speech",
		Description:        "Speak in front of an audience of fifty or more.",
		Category:           model.CategoryPersonalGrowth,
		AgeRange:           model.AgeRange{Min: 14, Max: 80, Optimal: 21},
		Difficulty:         model.DifficultyMedium,
		Rewards:            model.Rewards{Experience: 240, LifeScore: 35},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"personal_growth", "social", "public-speaking", "courage"},
	},
	{
		ID:                 "digital-detox",
		Name:               "One Week Digital Detox",
		Description:        "Spend seven days without social media or recreational screens.",
		Category:           model.CategoryPersonalGrowth,
		AgeRange:           model.AgeRange{Min: 13, Max: 80, Optimal: 22},
		Difficulty:         model.DifficultyEasy,
		Rewards:            model.Rewards{Experience: 110, LifeScore: 20, HealthScore: 10},
		VerificationMethod: model.VerifySelfReport,
		Tags:               []string{"personal_growth", "mindfulness", "disciplined"},
	},
	{
		ID:                 "journal-year",
		Name:               "Journal for a Year",
		Description:        "Keep a daily journal for 365 days.",
		Category:           model.CategoryPersonalGrowth,
		AgeRange:           model.AgeRange{Min: 12, Max: 90, Optimal: 25},
		Difficulty:         model.DifficultyHard,
		Rewards:            model.Rewards{Experience: 460, LifeScore: 50},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"personal_growth", "reflection", "disciplined", "writing"},
	},
	{
		ID:                 "pilgrimage-walk",
		Name:               "Walk a Pilgrimage Route",
		Description:        "Complete a multi-day pilgrimage or long-distance trail.",
		Category:           model.CategorySpiritual,
		AgeRange:           model.AgeRange{Min: 18, Max: 75, Optimal: 33},
		Difficulty:         model.DifficultyLegendary,
		Rewards:            model.Rewards{Experience: 1050, LifeScore: 90, HealthScore: 50, Title: "Pilgrim"},
		VerificationMethod: model.VerifyPhoto,
		Tags:               []string{"spiritual", "travel", "endurance", "mindfulness"},
	},
}

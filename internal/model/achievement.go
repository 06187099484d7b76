package model

// Category 成就所属的生活领域
type Category string

const (
	CategoryCareer           Category = "career"
	CategoryEducation        Category = "education"
	CategoryHealth           Category = "health"
	CategoryFitness          Category = "fitness"
	CategoryNutrition        Category = "nutrition"
	CategoryFinancial        Category = "financial"
	CategoryCivic            Category = "civic"
	CategorySocial           Category = "social"
	CategoryFamily           Category = "family"
	CategoryTravel           Category = "travel"
	CategoryCreative         Category = "creative"
	CategoryEntrepreneurship Category = "entrepreneurship"
	CategoryLeadership       Category = "leadership"
	CategoryPersonalGrowth   Category = "personal_growth"
	CategorySpiritual        Category = "spiritual"
)

// Difficulty 成就难度等级
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

// RequiredDays 完成该难度成就所需的最少天数
func (d Difficulty) RequiredDays() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 3
	case DifficultyHard:
		return 7
	case DifficultyLegendary:
		return 14
	default:
		return 1
	}
}

// VerificationMethod 任务完成的验证方式
type VerificationMethod string

const (
	VerifyPhoto      VerificationMethod = "photo"
	VerifySelfie     VerificationMethod = "selfie"
	VerifySelfReport VerificationMethod = "self_report"
	VerifyDocument   VerificationMethod = "document"
	VerifyLocation   VerificationMethod = "location"
	VerifyMetric     VerificationMethod = "metric"
)

// RequiresEvidence 照片类验证必须附带证据材料
func (v VerificationMethod) RequiresEvidence() bool {
	return v == VerifyPhoto || v == VerifySelfie
}

// Rewards 成就或任务完成后发放的奖励
type Rewards struct {
	Experience  int      `json:"experience"`
	LifeScore   int      `json:"lifeScore,omitempty"`
	HealthScore int      `json:"healthScore,omitempty"`
	CareerScore int      `json:"careerScore,omitempty"`
	CivicScore  int      `json:"civicScore,omitempty"`
	Title       string   `json:"title,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Unlocks     []string `json:"unlocks,omitempty"`
}

// AgeRange 成就适用的年龄区间，Optimal 用于推荐排序
type AgeRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Optimal int `json:"optimal"`
}

// Contains 判断年龄是否落在区间内
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// AchievementDefinition 成就定义，构建期写死，运行期只读
type AchievementDefinition struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Category           Category           `json:"category"`
	AgeRange           AgeRange           `json:"ageRange"`
	Difficulty         Difficulty         `json:"difficulty"`
	Rewards            Rewards            `json:"rewards"`
	VerificationMethod VerificationMethod `json:"verificationMethod"`
	Prerequisites      []string           `json:"prerequisites,omitempty"`
	Profession         string             `json:"profession,omitempty"`
	Tags               []string           `json:"tags"`
}

// HasTag 判断成就是否带有指定标签
func (a *AchievementDefinition) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

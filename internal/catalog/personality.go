package catalog

// 人格特质名，对应用户档案 personality 映射的键
const (
	TraitRiskTolerance = "risk_tolerance"
	TraitDiscipline    = "discipline"
	TraitCreativity    = "creativity"
	TraitSociability   = "sociability"
	TraitAmbition      = "ambition"
	TraitOpenness      = "openness"
	TraitEmpathy       = "empathy"
	TraitAnalytical    = "analytical"
)

// PersonalityPredicate 标签与特质阈值的映射：
// 成就带 Tag 且用户该特质分值超过 Threshold 则谓词命中。
type PersonalityPredicate struct {
	Tag       string
	Trait     string
	Threshold int
}

// personalityPredicates 谓词表，匹配规则数据驱动，不写死在分支里
var personalityPredicates = []PersonalityPredicate{
	{Tag: "risk-tolerant", Trait: TraitRiskTolerance, Threshold: 7},
	{Tag: "disciplined", Trait: TraitDiscipline, Threshold: 6},
	{Tag: "creative", Trait: TraitCreativity, Threshold: 6},
	{Tag: "social", Trait: TraitSociability, Threshold: 6},
	{Tag: "ambitious", Trait: TraitAmbition, Threshold: 7},
	{Tag: "adventurous", Trait: TraitOpenness, Threshold: 7},
	{Tag: "empathetic", Trait: TraitEmpathy, Threshold: 6},
	{Tag: "analytical", Trait: TraitAnalytical, Threshold: 6},
}

// MatchesPersonality 判断成就标签是否命中任意人格谓词
func MatchesPersonality(tags []string, personality map[string]int) bool {
	if len(personality) == 0 {
		return false
	}
	for _, pred := range personalityPredicates {
		score, ok := personality[pred.Trait]
		if !ok || score <= pred.Threshold {
			continue
		}
		for _, tag := range tags {
			if tag == pred.Tag {
				return true
			}
		}
	}
	return false
}

package catalog

import "strings"

// ProfessionEntry 职业标签及其关键词列表
type ProfessionEntry struct {
	Tag      string
	Keywords []string
}

// professionTable 职业关键词表。
// 表顺序决定多职业同时命中时的优先级，多词的具体职业放在泛化词之前，
// 调整顺序会改变检测结果，动前三思。
var professionTable = []ProfessionEntry{
	{Tag: "software developer", Keywords: []string{"software developer", "software engineer", "programmer", "developer", "coder", "devops"}},
	{Tag: "data scientist", Keywords: []string{"data scientist", "machine learning", "data analyst"}},
	{Tag: "doctor", Keywords: []string{"doctor", "physician", "surgeon", "md"}},
	{Tag: "nurse", Keywords: []string{"nurse", "nursing"}},
	{Tag: "dentist", Keywords: []string{"dentist", "orthodontist"}},
	{Tag: "pharmacist", Keywords: []string{"pharmacist", "pharmacy"}},
	{Tag: "therapist", Keywords: []string{"therapist", "psychologist", "counselor"}},
	{Tag: "teacher", Keywords: []string{"teacher", "professor", "educator", "tutor", "instructor"}},
	{Tag: "scientist", Keywords: []string{"scientist", "researcher", "phd"}},
	{Tag: "lawyer", Keywords: []string{"lawyer", "attorney", "paralegal", "legal counsel"}},
	{Tag: "accountant", Keywords: []string{"accountant", "bookkeeper", "auditor", "cpa"}},
	{Tag: "financial advisor", Keywords: []string{"financial advisor", "financial planner", "investment"}},
	{Tag: "architect", Keywords: []string{"architect"}},
	{Tag: "engineer", Keywords: []string{"engineer", "engineering"}},
	{Tag: "designer", Keywords: []string{"designer", "ux", "graphic design"}},
	{Tag: "marketing", Keywords: []string{"marketing", "brand manager", "seo"}},
	{Tag: "sales", Keywords: []string{"sales", "account executive"}},
	{Tag: "manager", Keywords: []string{"manager", "management", "director", "supervisor"}},
	{Tag: "entrepreneur", Keywords: []string{"entrepreneur", "founder", "ceo", "business owner"}},
	{Tag: "chef", Keywords: []string{"chef", "cook", "culinary"}},
	{Tag: "police officer", Keywords: []string{"police", "officer", "detective"}},
	{Tag: "firefighter", Keywords: []string{"firefighter", "fireman"}},
	{Tag: "pilot", Keywords: []string{"pilot", "aviator"}},
	{Tag: "artist", Keywords: []string{"artist", "painter", "illustrator", "sculptor"}},
	{Tag: "musician", Keywords: []string{"musician", "singer", "composer", "dj"}},
	{Tag: "writer", Keywords: []string{"writer", "author", "journalist", "editor"}},
	{Tag: "athlete", Keywords: []string{"athlete", "coach", "trainer"}},
	{Tag: "photographer", Keywords: []string{"photographer", "videographer"}},
	{Tag: "electrician", Keywords: []string{"electrician"}},
	{Tag: "plumber", Keywords: []string{"plumber", "plumbing"}},
	{Tag: "farmer", Keywords: []string{"farmer", "agriculture", "rancher"}},
	{Tag: "consultant", Keywords: []string{"consultant", "consulting", "analyst"}},
}

// DetectProfession 大小写不敏感的子串匹配，按表顺序取第一个命中的职业标签，
// 未命中返回空串。
func DetectProfession(roleText string) string {
	role := strings.ToLower(strings.TrimSpace(roleText))
	if role == "" {
		return ""
	}
	for _, entry := range professionTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(role, kw) {
				return entry.Tag
			}
		}
	}
	return ""
}

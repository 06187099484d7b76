package catalog

import "lifequest_backend/internal/model"

// civicActions 公民行动定义表
var civicActions = []model.CivicAction{
	{
		ID:                 "blood-donation",
		Name:               "Donate Blood",
		Description:        "Donate blood at a certified donation center.",
		Type:               model.CivicDonation,
		ImpactPoints:       40,
		VerificationMethod: model.VerifySelfie,
		TimeEstimate:       "1 hour",
		Tags:               []string{"health", "service"},
	},
	{
		ID:                 "food-bank-shift",
		Name:               "Work a Food Bank Shift",
		Description:        "Volunteer a full shift at a local food bank.",
		Type:               model.CivicVolunteer,
		ImpactPoints:       30,
		VerificationMethod: model.VerifyPhoto,
		TimeEstimate:       "4 hours",
		Tags:               []string{"community", "service"},
	},
	{
		ID:                 "park-cleanup",
		Name:               "Clean Up a Park",
		Description:        "Collect litter in a public park or along a trail.",
		Type:               model.CivicEnviron,
		ImpactPoints:       25,
		VerificationMethod: model.VerifyPhoto,
		TimeEstimate:       "2 hours",
		Tags:               []string{"environment", "community"},
	},
	{
		ID:                 "attend-town-hall",
		Name:               "Attend a Town Hall",
		Description:        "Attend a local government meeting and take notes.",
		Type:               model.CivicAdvocacy,
		ImpactPoints:       20,
		VerificationMethod: model.VerifySelfReport,
		TimeEstimate:       "2 hours",
		Tags:               []string{"community", "government"},
	},
	{
		ID:                 "mentor-youth",
		Name:               "Mentor Local Youth",
		Description:        "Spend an afternoon mentoring at a youth center.",
		Type:               model.CivicCommunity,
		ImpactPoints:       35,
		VerificationMethod: model.VerifySelfReport,
		TimeEstimate:       "3 hours",
		Tags:               []string{"mentoring", "community"},
	},
	{
		ID:                 "plant-trees",
		Name:               "Plant Trees",
		Description:        "Join or organize a tree planting action.",
		Type:               model.CivicEnviron,
		ImpactPoints:       30,
		VerificationMethod: model.VerifyPhoto,
		TimeEstimate:       "3 hours",
		Tags:               []string{"environment"},
	},
}

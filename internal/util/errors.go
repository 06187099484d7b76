package util

import "errors"

var (
	ErrAchievementNotFound  = errors.New("achievement not found")
	ErrCivicActionNotFound  = errors.New("civic action not found")
	ErrAchievementLocked    = errors.New("achievement locked: prerequisites not completed")
	ErrCapacityReached      = errors.New("active achievement limit reached (max 15)")
	ErrAlreadyActive        = errors.New("achievement already in progress")
	ErrAlreadyCompleted     = errors.New("achievement already completed")
	ErrAchievementNotActive = errors.New("achievement not in progress")
	ErrEvidenceRequired     = errors.New("photo evidence required to complete this task")
	ErrRemoveNotConfirmed   = errors.New("removal must be explicitly confirmed")
	ErrInvalidBackup        = errors.New("backup blob missing both userProfile and userSigns")
)

package model

import "time"

type ChallengeParticipant struct {
	UserID      uint64    `gorm:"primaryKey" json:"userId"`
	ChallengeID uint64    `gorm:"primaryKey;index:idx_challenge_id" json:"challengeId"`
	JoinedAt    time.Time `json:"joinedAt"`
}

func (ChallengeParticipant) TableName() string {
	return "challenge_participants"
}

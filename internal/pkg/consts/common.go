package consts

const (
	DefaultPageSize  = 10
	MaxPageSize      = 100
	ProfilePostLimit = 10
	LeaderboardLimit = 10
)

const (
	BadgeSocialite  = "Socialite"
	BadgeChallenger = "Challenger"
	Badge10kClub    = "10k Club"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

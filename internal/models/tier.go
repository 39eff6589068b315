package models

// Tier is the ordinal privilege level reported by the engine's auth
// status endpoint. Higher tiers always include the lower tiers' access.
type Tier int

const (
	TierAnonymous Tier = 0
	TierUser      Tier = 1
	TierModerator Tier = 2
	TierAdmin     Tier = 3
)

func (t Tier) String() string {
	switch t {
	case TierAnonymous:
		return "anonymous"
	case TierUser:
		return "user"
	case TierModerator:
		return "moderator"
	case TierAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

func (t Tier) AtLeast(other Tier) bool {
	return t >= other
}

// Valid reports whether the tier is one the engine can actually assign.
func (t Tier) Valid() bool {
	return t >= TierAnonymous && t <= TierAdmin
}

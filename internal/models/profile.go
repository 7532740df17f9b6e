package models

// Profile is the signed-in user's display card. All fields are display only.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Avatar      string `json:"avatar"`
	IsPremium   bool   `json:"isPremium"`
	IsVerified  bool   `json:"isVerified"`
	MemberSince string `json:"memberSince"`
	Bio         string `json:"bio"`
	Job         string `json:"job"`
	Birthdate   string `json:"birthdate"`
	Status      string `json:"status"`
}

// ProfileStats holds the counters shown under the profile card.
type ProfileStats struct {
	Properties int     `json:"properties"`
	Favorites  int     `json:"favorites"`
	Rating     float64 `json:"rating"`
}

// HistoryItem is one entry of the profile activity feed.
type HistoryItem struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	IconColor   string `json:"iconColor"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Badge       string `json:"badge,omitempty"`
	BadgeColor  string `json:"badgeColor,omitempty"`
}

func (h HistoryItem) EntityID() int { return h.ID }

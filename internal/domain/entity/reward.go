package entity

// Reward is a catalog item redeemable for points. Rewards are immutable once
// created; there is no edit path.
type Reward struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"` // Point cost, always positive.
}

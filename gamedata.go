package artifacts

// Drop is a possible resource or monster drop. Rate is the inverse drop
// chance (1 means every time).
type Drop struct {
	Code        string `json:"code"`
	Rate        int    `json:"rate"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity int    `json:"max_quantity"`
}

// Effect is a stat modifier carried by an item.
type Effect struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Craft describes how an item is crafted.
type Craft struct {
	Skill    string       `json:"skill"`
	Level    int          `json:"level"`
	Items    []SimpleItem `json:"items"`
	Quantity int          `json:"quantity"`
}

// Item is a game item definition.
type Item struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Level       int      `json:"level"`
	Type        string   `json:"type"`
	Subtype     string   `json:"subtype"`
	Description string   `json:"description"`
	Effects     []Effect `json:"effects"`
	Craft       *Craft   `json:"craft"`
	Tradeable   bool     `json:"tradeable"`
}

// Monster is a fightable monster definition.
type Monster struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Level       int    `json:"level"`
	HP          int    `json:"hp"`
	AttackFire  int    `json:"attack_fire"`
	AttackEarth int    `json:"attack_earth"`
	AttackWater int    `json:"attack_water"`
	AttackAir   int    `json:"attack_air"`
	ResFire     int    `json:"res_fire"`
	ResEarth    int    `json:"res_earth"`
	ResWater    int    `json:"res_water"`
	ResAir      int    `json:"res_air"`
	MinGold     int    `json:"min_gold"`
	MaxGold     int    `json:"max_gold"`
	Drops       []Drop `json:"drops"`
}

// Resource is a gatherable resource definition.
type Resource struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Skill string `json:"skill"`
	Level int    `json:"level"`
	Drops []Drop `json:"drops"`
}

// MapContent is what occupies a map tile, if anything.
type MapContent struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// MapTile is one tile of the world map.
type MapTile struct {
	Name    string      `json:"name"`
	Skin    string      `json:"skin"`
	X       int         `json:"x"`
	Y       int         `json:"y"`
	Content *MapContent `json:"content"`
}

// Position returns the tile coordinates.
func (m MapTile) Position() Position { return Position{X: m.X, Y: m.Y} }

// TaskInfo is a taskmaster task definition.
type TaskInfo struct {
	Code        string      `json:"code"`
	Level       int         `json:"level"`
	Type        string      `json:"type"`
	MinQuantity int         `json:"min_quantity"`
	MaxQuantity int         `json:"max_quantity"`
	Skill       string      `json:"skill"`
	Rewards     *TaskReward `json:"rewards"`
}

// TaskReward is what completing a task can pay out.
type TaskReward struct {
	Code        string       `json:"code"`
	Rate        int          `json:"rate"`
	MinQuantity int          `json:"min_quantity"`
	MaxQuantity int          `json:"max_quantity"`
	Items       []SimpleItem `json:"items"`
	Gold        int          `json:"gold"`
}

// AchievementReward is the payout for finishing an achievement.
type AchievementReward struct {
	Gold int `json:"gold"`
}

// Achievement is an account achievement definition.
type Achievement struct {
	Name        string             `json:"name"`
	Code        string             `json:"code"`
	Description string             `json:"description"`
	Points      int                `json:"points"`
	Type        string             `json:"type"`
	Target      string             `json:"target"`
	Total       int                `json:"total"`
	Rewards     *AchievementReward `json:"rewards"`
	CompletedAt *Timestamp         `json:"completed_at,omitempty"`
}

// Event is a scheduled world event definition.
type Event struct {
	Name     string      `json:"name"`
	Code     string      `json:"code"`
	Content  *MapContent `json:"content"`
	Duration int         `json:"duration"`
	Rate     int         `json:"rate"`
}

// ActiveEvent is a world event currently on the map.
type ActiveEvent struct {
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Map        *MapTile  `json:"map"`
	Duration   int       `json:"duration"`
	Expiration Timestamp `json:"expiration"`
	CreatedAt  Timestamp `json:"created_at"`
}

// GEOrder is a sell order on the grand exchange.
type GEOrder struct {
	ID        string    `json:"id"`
	Seller    string    `json:"seller"`
	Code      string    `json:"code"`
	Quantity  int       `json:"quantity"`
	Price     int       `json:"price"`
	CreatedAt Timestamp `json:"created_at"`
}

// GESale is a completed grand exchange transaction.
type GESale struct {
	OrderID  string    `json:"order_id"`
	Seller   string    `json:"seller"`
	Buyer    string    `json:"buyer"`
	Code     string    `json:"code"`
	Quantity int       `json:"quantity"`
	Price    int       `json:"price"`
	SoldAt   Timestamp `json:"sold_at"`
}

// BankDetails is the account bank summary.
type BankDetails struct {
	Slots             int `json:"slots"`
	Expansions        int `json:"expansions"`
	NextExpansionCost int `json:"next_expansion_cost"`
	Gold              int `json:"gold"`
}

// AccountDetails is the account profile.
type AccountDetails struct {
	Username          string `json:"username"`
	Subscribed        bool   `json:"subscribed"`
	Status            string `json:"status"`
	Badges            []any  `json:"badges"`
	AchievementPoints int    `json:"achievements_points"`
	Banned            bool   `json:"banned"`
	BanReason         string `json:"ban_reason"`
}

// LogEntry is one line of the account activity log.
type LogEntry struct {
	Character          string    `json:"character"`
	Account            string    `json:"account"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	CooldownSeconds    int       `json:"cooldown"`
	CooldownExpiration Timestamp `json:"cooldown_expiration"`
	CreatedAt          Timestamp `json:"created_at"`
}

// CharacterLeaderboardEntry is one row of the characters leaderboard.
type CharacterLeaderboardEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Account  string `json:"account"`
	Skin     string `json:"skin"`
	Level    int    `json:"level"`
	Total    int    `json:"total_xp"`
	Gold     int    `json:"gold"`
}

// AccountLeaderboardEntry is one row of the accounts leaderboard.
type AccountLeaderboardEntry struct {
	Position          int    `json:"position"`
	Account           string `json:"account"`
	Status            string `json:"status"`
	AchievementPoints int    `json:"achievements_points"`
}

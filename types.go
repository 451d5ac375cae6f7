package artifacts

import (
	"encoding/json"
	"time"
)

// Timestamp is a lenient RFC-3339 timestamp. The cooldown contract treats
// malformed expiry values as "no wait", so decoding never fails; unparseable
// input yields the zero time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil || raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999999"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Position is a tile on the 2D world grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the Manhattan distance to another position.
func (p Position) DistanceTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cooldown is the pacing block attached to every action response.
type Cooldown struct {
	TotalSeconds     int       `json:"total_seconds"`
	RemainingSeconds int       `json:"remaining_seconds"`
	StartedAt        Timestamp `json:"started_at"`
	Expiration       Timestamp `json:"expiration"`
	Reason           string    `json:"reason"`
}

// InventoryItem is one occupied inventory slot.
type InventoryItem struct {
	Slot     int    `json:"slot"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// SimpleItem is a code/quantity pair, used for bank contents, crafting
// ingredients and trade payloads.
type SimpleItem struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// Skill names accepted by SkillProgress and used in crafting recipes.
const (
	SkillMining          = "mining"
	SkillWoodcutting     = "woodcutting"
	SkillFishing         = "fishing"
	SkillWeaponcrafting  = "weaponcrafting"
	SkillGearcrafting    = "gearcrafting"
	SkillJewelrycrafting = "jewelrycrafting"
	SkillCooking         = "cooking"
	SkillAlchemy         = "alchemy"
)

// Character mirrors the remote character schema.
type Character struct {
	Name    string `json:"name"`
	Account string `json:"account"`
	Skin    string `json:"skin"`
	Level   int    `json:"level"`
	XP      int    `json:"xp"`
	MaxXP   int    `json:"max_xp"`
	Gold    int    `json:"gold"`
	Speed   int    `json:"speed"`

	MiningLevel          int `json:"mining_level"`
	MiningXP             int `json:"mining_xp"`
	MiningMaxXP          int `json:"mining_max_xp"`
	WoodcuttingLevel     int `json:"woodcutting_level"`
	WoodcuttingXP        int `json:"woodcutting_xp"`
	WoodcuttingMaxXP     int `json:"woodcutting_max_xp"`
	FishingLevel         int `json:"fishing_level"`
	FishingXP            int `json:"fishing_xp"`
	FishingMaxXP         int `json:"fishing_max_xp"`
	WeaponcraftingLevel  int `json:"weaponcrafting_level"`
	WeaponcraftingXP     int `json:"weaponcrafting_xp"`
	WeaponcraftingMaxXP  int `json:"weaponcrafting_max_xp"`
	GearcraftingLevel    int `json:"gearcrafting_level"`
	GearcraftingXP       int `json:"gearcrafting_xp"`
	GearcraftingMaxXP    int `json:"gearcrafting_max_xp"`
	JewelrycraftingLevel int `json:"jewelrycrafting_level"`
	JewelrycraftingXP    int `json:"jewelrycrafting_xp"`
	JewelrycraftingMaxXP int `json:"jewelrycrafting_max_xp"`
	CookingLevel         int `json:"cooking_level"`
	CookingXP            int `json:"cooking_xp"`
	CookingMaxXP         int `json:"cooking_max_xp"`
	AlchemyLevel         int `json:"alchemy_level"`
	AlchemyXP            int `json:"alchemy_xp"`
	AlchemyMaxXP         int `json:"alchemy_max_xp"`

	HP             int `json:"hp"`
	MaxHP          int `json:"max_hp"`
	Haste          int `json:"haste"`
	CriticalStrike int `json:"critical_strike"`
	Stamina        int `json:"stamina"`

	AttackFire  int `json:"attack_fire"`
	AttackEarth int `json:"attack_earth"`
	AttackWater int `json:"attack_water"`
	AttackAir   int `json:"attack_air"`
	DmgFire     int `json:"dmg_fire"`
	DmgEarth    int `json:"dmg_earth"`
	DmgWater    int `json:"dmg_water"`
	DmgAir      int `json:"dmg_air"`
	ResFire     int `json:"res_fire"`
	ResEarth    int `json:"res_earth"`
	ResWater    int `json:"res_water"`
	ResAir      int `json:"res_air"`

	X                  int       `json:"x"`
	Y                  int       `json:"y"`
	CooldownSeconds    int       `json:"cooldown"`
	CooldownExpiration Timestamp `json:"cooldown_expiration"`

	WeaponSlot           string `json:"weapon_slot"`
	ShieldSlot           string `json:"shield_slot"`
	HelmetSlot           string `json:"helmet_slot"`
	BodyArmorSlot        string `json:"body_armor_slot"`
	LegArmorSlot         string `json:"leg_armor_slot"`
	BootsSlot            string `json:"boots_slot"`
	Ring1Slot            string `json:"ring1_slot"`
	Ring2Slot            string `json:"ring2_slot"`
	AmuletSlot           string `json:"amulet_slot"`
	Artifact1Slot        string `json:"artifact1_slot"`
	Artifact2Slot        string `json:"artifact2_slot"`
	Artifact3Slot        string `json:"artifact3_slot"`
	Utility1Slot         string `json:"utility1_slot"`
	Utility1SlotQuantity int    `json:"utility1_slot_quantity"`
	Utility2Slot         string `json:"utility2_slot"`
	Utility2SlotQuantity int    `json:"utility2_slot_quantity"`

	Task         string `json:"task"`
	TaskType     string `json:"task_type"`
	TaskProgress int    `json:"task_progress"`
	TaskTotal    int    `json:"task_total"`

	InventoryMaxItems int             `json:"inventory_max_items"`
	Inventory         []InventoryItem `json:"inventory"`
}

// Position returns the character's current tile.
func (c *Character) Position() Position { return Position{X: c.X, Y: c.Y} }

// InventorySpace returns how many more items fit in the inventory.
func (c *Character) InventorySpace() int {
	used := 0
	for _, item := range c.Inventory {
		used += item.Quantity
	}
	return c.InventoryMaxItems - used
}

// HasItem reports whether the inventory holds the item and in what quantity.
func (c *Character) HasItem(code string) (bool, int) {
	for _, item := range c.Inventory {
		if item.Code == code {
			return true, item.Quantity
		}
	}
	return false, 0
}

// SkillProgress returns the level and XP completion percentage for a skill
// name, or (0, 0) for an unknown skill.
func (c *Character) SkillProgress(skill string) (int, float64) {
	var level, xp, maxXP int
	switch skill {
	case SkillMining:
		level, xp, maxXP = c.MiningLevel, c.MiningXP, c.MiningMaxXP
	case SkillWoodcutting:
		level, xp, maxXP = c.WoodcuttingLevel, c.WoodcuttingXP, c.WoodcuttingMaxXP
	case SkillFishing:
		level, xp, maxXP = c.FishingLevel, c.FishingXP, c.FishingMaxXP
	case SkillWeaponcrafting:
		level, xp, maxXP = c.WeaponcraftingLevel, c.WeaponcraftingXP, c.WeaponcraftingMaxXP
	case SkillGearcrafting:
		level, xp, maxXP = c.GearcraftingLevel, c.GearcraftingXP, c.GearcraftingMaxXP
	case SkillJewelrycrafting:
		level, xp, maxXP = c.JewelrycraftingLevel, c.JewelrycraftingXP, c.JewelrycraftingMaxXP
	case SkillCooking:
		level, xp, maxXP = c.CookingLevel, c.CookingXP, c.CookingMaxXP
	case SkillAlchemy:
		level, xp, maxXP = c.AlchemyLevel, c.AlchemyXP, c.AlchemyMaxXP
	default:
		return 0, 0
	}
	if maxXP <= 0 {
		return level, 0
	}
	return level, float64(xp) / float64(maxXP) * 100
}

// TaskCompletion returns the current task progress as a percentage.
func (c *Character) TaskCompletion() float64 {
	if c.TaskTotal <= 0 {
		return 0
	}
	return float64(c.TaskProgress) / float64(c.TaskTotal) * 100
}

// EquippedItems maps each equipment slot name to the equipped item code.
// Empty slots map to the empty string.
func (c *Character) EquippedItems() map[string]string {
	return map[string]string{
		"weapon":    c.WeaponSlot,
		"shield":    c.ShieldSlot,
		"helmet":    c.HelmetSlot,
		"body":      c.BodyArmorSlot,
		"legs":      c.LegArmorSlot,
		"boots":     c.BootsSlot,
		"ring1":     c.Ring1Slot,
		"ring2":     c.Ring2Slot,
		"amulet":    c.AmuletSlot,
		"artifact1": c.Artifact1Slot,
		"artifact2": c.Artifact2Slot,
		"artifact3": c.Artifact3Slot,
		"utility1":  c.Utility1Slot,
		"utility2":  c.Utility2Slot,
	}
}

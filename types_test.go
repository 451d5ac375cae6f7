package artifacts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionDistance(t *testing.T) {
	require.Equal(t, 0, Position{}.DistanceTo(Position{}))
	require.Equal(t, 7, Position{X: -2, Y: 1}.DistanceTo(Position{X: 3, Y: 3}))
}

func TestInventoryHelpers(t *testing.T) {
	char := &Character{
		InventoryMaxItems: 100,
		Inventory: []InventoryItem{
			{Slot: 1, Code: "copper_ore", Quantity: 30},
			{Slot: 2, Code: "ash_wood", Quantity: 12},
		},
	}

	require.Equal(t, 58, char.InventorySpace())

	ok, qty := char.HasItem("ash_wood")
	require.True(t, ok)
	require.Equal(t, 12, qty)

	ok, qty = char.HasItem("gold_ore")
	require.False(t, ok)
	require.Zero(t, qty)
}

func TestSkillProgress(t *testing.T) {
	char := &Character{MiningLevel: 12, MiningXP: 50, MiningMaxXP: 200}

	level, pct := char.SkillProgress(SkillMining)
	require.Equal(t, 12, level)
	require.InDelta(t, 25.0, pct, 0.001)

	level, pct = char.SkillProgress("juggling")
	require.Zero(t, level)
	require.Zero(t, pct)
}

func TestTaskCompletion(t *testing.T) {
	char := &Character{TaskProgress: 30, TaskTotal: 120}
	require.InDelta(t, 25.0, char.TaskCompletion(), 0.001)
	require.Zero(t, (&Character{}).TaskCompletion())
}

func TestEquippedItems(t *testing.T) {
	char := &Character{WeaponSlot: "iron_sword", Ring1Slot: "forest_ring"}
	slots := char.EquippedItems()
	require.Equal(t, "iron_sword", slots["weapon"])
	require.Equal(t, "forest_ring", slots["ring1"])
	require.Empty(t, slots["shield"])
	require.Len(t, slots, 14)
}

package artifacts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCharacter(t *testing.T) {
	char := &Character{
		Name: "Bob", Level: 12, XP: 300, MaxXP: 1200,
		HP: 95, MaxHP: 120,
		MiningLevel: 7, MiningXP: 10, MiningMaxXP: 100,
	}

	out := FormatCharacter(char)
	require.Contains(t, out, "Bob")
	require.Contains(t, out, "combat")
	require.Contains(t, out, "mining")
	require.Contains(t, out, "95/120")

	require.Empty(t, FormatCharacter(nil))
}

func TestFormatInventorySkipsEmptySlots(t *testing.T) {
	char := &Character{
		InventoryMaxItems: 50,
		Inventory: []InventoryItem{
			{Slot: 1, Code: "copper_ore", Quantity: 10},
			{Slot: 2, Code: "", Quantity: 0},
		},
	}

	out := FormatInventory(char)
	require.Contains(t, out, "copper_ore")
	require.Contains(t, out, "40")
	require.NotContains(t, out, "Slot 2")
}

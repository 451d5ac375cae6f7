package artifacts

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatCharacter renders a character sheet as an ASCII table: combat level
// plus every skill with its XP progress.
func FormatCharacter(char *Character) string {
	if char == nil {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf("%s (%d,%d)", char.Name, char.X, char.Y))
	t.AppendHeader(table.Row{"Skill", "Level", "XP"})
	t.AppendRow(table.Row{"combat", char.Level, xpCell(char.XP, char.MaxXP)})

	for _, skill := range []string{
		SkillMining, SkillWoodcutting, SkillFishing,
		SkillWeaponcrafting, SkillGearcrafting, SkillJewelrycrafting,
		SkillCooking, SkillAlchemy,
	} {
		level, pct := char.SkillProgress(skill)
		t.AppendRow(table.Row{skill, level, fmt.Sprintf("%.1f%%", pct)})
	}

	t.AppendFooter(table.Row{"", "HP", fmt.Sprintf("%d/%d", char.HP, char.MaxHP)})
	return t.Render()
}

// FormatInventory renders the character's inventory, one row per occupied
// slot, with the free-space count in the footer.
func FormatInventory(char *Character) string {
	if char == nil {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Slot", "Item", "Quantity"})
	for _, item := range char.Inventory {
		if item.Code == "" {
			continue
		}
		t.AppendRow(table.Row{item.Slot, item.Code, item.Quantity})
	}
	t.AppendFooter(table.Row{"", "free", char.InventorySpace()})
	return t.Render()
}

func xpCell(xp, maxXP int) string {
	if maxXP <= 0 {
		return fmt.Sprintf("%d", xp)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", xp, maxXP, float64(xp)/float64(maxXP)*100)
}

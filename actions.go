package artifacts

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// ActionBase carries the fields every action response shares: the cooldown
// the action triggered and the updated character.
type ActionBase struct {
	Cooldown  Cooldown   `json:"cooldown"`
	Character *Character `json:"character"`
}

func (a *ActionBase) base() *ActionBase { return a }

// actionResult is implemented by every action response type via an embedded
// ActionBase.
type actionResult interface {
	base() *ActionBase
}

// action gates the request on the character's cooldown, performs it, then
// records the new cooldown and character snapshot from the response.
func (h *CharacterClient) action(ctx context.Context, verb string, payload any, out actionResult) error {
	if err := h.client.cooldowns.wait(ctx, h.name); err != nil {
		return err
	}

	path := "my/" + h.name + "/action/" + verb
	wrapper := struct {
		Data actionResult `json:"data"`
	}{Data: out}
	if err := h.client.do(ctx, http.MethodPost, path, payload, &wrapper); err != nil {
		return err
	}

	b := out.base()
	h.client.cooldowns.record(h.name, b.Cooldown.Expiration.Time)
	h.setCharacter(b.Character)
	h.logger.Debug("action completed",
		zap.String("action", verb),
		zap.Int("cooldown_seconds", b.Cooldown.TotalSeconds),
	)
	return nil
}

// Fight describes the outcome of one combat round.
type Fight struct {
	XP     int          `json:"xp"`
	Gold   int          `json:"gold"`
	Drops  []SimpleItem `json:"drops"`
	Turns  int          `json:"turns"`
	Logs   []string     `json:"logs"`
	Result string       `json:"result"`
}

// SkillDetails describes the XP and items produced by a gathering or
// crafting action.
type SkillDetails struct {
	XP    int          `json:"xp"`
	Items []SimpleItem `json:"items"`
}

// MoveResult is the response to a move action.
type MoveResult struct {
	ActionBase
	Destination MapTile `json:"destination"`
}

// RestResult is the response to a rest action.
type RestResult struct {
	ActionBase
	HPRestored int `json:"hp_restored"`
}

// FightResult is the response to a fight action.
type FightResult struct {
	ActionBase
	Fight Fight `json:"fight"`
}

// SkillResult is the response to gather, craft and recycle actions.
type SkillResult struct {
	ActionBase
	Details SkillDetails `json:"details"`
}

// EquipResult is the response to equip and unequip actions.
type EquipResult struct {
	ActionBase
	Slot string `json:"slot"`
	Item Item   `json:"item"`
}

// UseResult is the response to using a consumable.
type UseResult struct {
	ActionBase
	Item Item `json:"item"`
}

// DeleteResult is the response to deleting inventory items.
type DeleteResult struct {
	ActionBase
	Item SimpleItem `json:"item"`
}

// Move walks the character to the given coordinates. Moving to the tile the
// character already occupies returns an error satisfying
// IsAlreadyAtDestination.
func (h *CharacterClient) Move(ctx context.Context, x, y int) (*MoveResult, error) {
	payload := struct {
		X int `json:"x"`
		Y int `json:"y"`
	}{X: x, Y: y}
	var res MoveResult
	if err := h.action(ctx, "move", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MoveTo walks the character to the given position.
func (h *CharacterClient) MoveTo(ctx context.Context, pos Position) (*MoveResult, error) {
	return h.Move(ctx, pos.X, pos.Y)
}

// Rest recovers HP in exchange for a cooldown.
func (h *CharacterClient) Rest(ctx context.Context) (*RestResult, error) {
	var res RestResult
	if err := h.action(ctx, "rest", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Fight attacks the monster on the character's tile.
func (h *CharacterClient) Fight(ctx context.Context) (*FightResult, error) {
	var res FightResult
	if err := h.action(ctx, "fight", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Gather harvests the resource on the character's tile.
func (h *CharacterClient) Gather(ctx context.Context) (*SkillResult, error) {
	var res SkillResult
	if err := h.action(ctx, "gathering", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Craft crafts quantity of the item at the workshop the character stands on.
func (h *CharacterClient) Craft(ctx context.Context, code string, quantity int) (*SkillResult, error) {
	var res SkillResult
	if err := h.action(ctx, "crafting", codeQuantity(code, quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Recycle breaks items down at the matching workshop.
func (h *CharacterClient) Recycle(ctx context.Context, code string, quantity int) (*SkillResult, error) {
	var res SkillResult
	if err := h.action(ctx, "recycle", codeQuantity(code, quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Equip equips an inventory item into the given slot.
func (h *CharacterClient) Equip(ctx context.Context, code, slot string, quantity int) (*EquipResult, error) {
	payload := struct {
		Code     string `json:"code"`
		Slot     string `json:"slot"`
		Quantity int    `json:"quantity"`
	}{Code: code, Slot: slot, Quantity: quantity}
	var res EquipResult
	if err := h.action(ctx, "equip", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Unequip removes the item in the given slot back into the inventory.
func (h *CharacterClient) Unequip(ctx context.Context, slot string, quantity int) (*EquipResult, error) {
	payload := struct {
		Slot     string `json:"slot"`
		Quantity int    `json:"quantity"`
	}{Slot: slot, Quantity: quantity}
	var res EquipResult
	if err := h.action(ctx, "unequip", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Use consumes an item from the inventory.
func (h *CharacterClient) Use(ctx context.Context, code string, quantity int) (*UseResult, error) {
	var res UseResult
	if err := h.action(ctx, "use", codeQuantity(code, quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteItem discards items from the inventory.
func (h *CharacterClient) DeleteItem(ctx context.Context, code string, quantity int) (*DeleteResult, error) {
	var res DeleteResult
	if err := h.action(ctx, "delete-item", codeQuantity(code, quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func codeQuantity(code string, quantity int) any {
	return struct {
		Code     string `json:"code"`
		Quantity int    `json:"quantity"`
	}{Code: code, Quantity: quantity}
}

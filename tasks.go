package artifacts

import "context"

// Task is the task a character currently holds.
type Task struct {
	Code    string      `json:"code"`
	Type    string      `json:"type"`
	Total   int         `json:"total"`
	Rewards *TaskReward `json:"rewards"`
}

// TaskResult is the response to accepting a task.
type TaskResult struct {
	ActionBase
	Task Task `json:"task"`
}

// TaskRewardResult is the response to completing or exchanging a task.
type TaskRewardResult struct {
	ActionBase
	Rewards TaskReward `json:"rewards"`
}

// TaskTradeResult is the response to handing task items to the taskmaster.
type TaskTradeResult struct {
	ActionBase
	Trade SimpleItem `json:"trade"`
}

// TaskCancelResult is the response to cancelling a task.
type TaskCancelResult struct {
	ActionBase
}

// AcceptTask takes a new task from the taskmaster the character stands on.
func (h *CharacterClient) AcceptTask(ctx context.Context) (*TaskResult, error) {
	var res TaskResult
	if err := h.action(ctx, "tasks/new", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CompleteTask turns in the finished task and collects the reward.
func (h *CharacterClient) CompleteTask(ctx context.Context) (*TaskRewardResult, error) {
	var res TaskRewardResult
	if err := h.action(ctx, "tasks/complete", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ExchangeTask trades task coins for a reward roll.
func (h *CharacterClient) ExchangeTask(ctx context.Context) (*TaskRewardResult, error) {
	var res TaskRewardResult
	if err := h.action(ctx, "tasks/exchange", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TradeTask hands items of the current item task to the taskmaster.
func (h *CharacterClient) TradeTask(ctx context.Context, code string, quantity int) (*TaskTradeResult, error) {
	var res TaskTradeResult
	if err := h.action(ctx, "tasks/trade", codeQuantity(code, quantity), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelTask abandons the current task for a task coin.
func (h *CharacterClient) CancelTask(ctx context.Context) (*TaskCancelResult, error) {
	var res TaskCancelResult
	if err := h.action(ctx, "tasks/cancel", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

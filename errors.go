package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Game error codes the API returns alongside non-2xx statuses. They occupy
// the 4xx range but most are ArtifactsMMO-specific, not standard HTTP.
const (
	CodeTokenMissing             = 452
	CodeTransactionInProgress    = 461
	CodeBankFull                 = 462
	CodeItemNotRecyclable        = 473
	CodeTaskMissing              = 474
	CodeTaskAlreadyCompleted     = 475
	CodeInsufficientQuantity     = 478
	CodeExchangeNoStock          = 480
	CodeExchangeNoItem           = 482
	CodeExchangeTransactionBusy  = 483
	CodeEquipmentTooMany         = 484
	CodeEquipmentAlreadyEquipped = 485
	CodeActionInProgress         = 486
	CodeTaskmasterNoTask         = 487
	CodeTaskNotComplete          = 488
	CodeTaskmasterHasTask        = 489
	CodeAlreadyAtDestination     = 490
	CodeInvalidEquipmentSlot     = 491
	CodeLevelTooLow              = 493
	CodeMaxCharactersReached     = 495
	CodeSkillLevelTooLow         = 496
	CodeInventoryFull            = 497
	CodeCharacterNotFound        = 498
	CodeCooldownActive           = 499
	CodeNameAlreadyUsed          = 560
)

// APIError is returned whenever the server answers with a status outside
// 200-299. StatusCode is the HTTP status; Code is the game error code from
// the response body when one was present, otherwise it equals StatusCode.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e == nil {
		return "artifacts: request failed"
	}
	msg := e.Message
	if msg == "" {
		msg = "no error message"
	}
	if e.Code != 0 && e.Code != e.StatusCode {
		return fmt.Sprintf("artifacts: %s: status %d (code %d): %s", e.Endpoint, e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("artifacts: %s: status %d: %s", e.Endpoint, e.StatusCode, msg)
}

// newAPIError builds an APIError from a non-2xx response body. The server
// wraps failures as {"error": {"code": N, "message": "..."}}; anything else
// is kept verbatim as the message.
func newAPIError(status int, endpoint string, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Code: status, Endpoint: endpoint}

	var parsed struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		apiErr.Message = parsed.Error.Message
		if parsed.Error.Code != 0 {
			apiErr.Code = parsed.Error.Code
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}

// ErrorCode extracts the game error code from err, or 0 when err is not an
// APIError.
func ErrorCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

func hasCode(err error, code int) bool { return ErrorCode(err) == code }

// IsCooldownActive reports whether the server rejected an action because the
// character was still cooling down. Seeing this in practice means the local
// cooldown record has drifted behind the server's.
func IsCooldownActive(err error) bool { return hasCode(err, CodeCooldownActive) }

// IsNotFound reports whether the requested resource does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsAlreadyAtDestination reports whether a move targeted the tile the
// character already stands on. The server flags this with its own code; it is
// surfaced as an error so callers can treat it as a no-op if they wish.
func IsAlreadyAtDestination(err error) bool { return hasCode(err, CodeAlreadyAtDestination) }

// IsInventoryFull reports whether the character's inventory has no room.
func IsInventoryFull(err error) bool { return hasCode(err, CodeInventoryFull) }

// IsBankFull reports whether the bank has no room for the deposit.
func IsBankFull(err error) bool { return hasCode(err, CodeBankFull) }

// IsInsufficientQuantity reports whether the character lacks the items the
// action needs.
func IsInsufficientQuantity(err error) bool { return hasCode(err, CodeInsufficientQuantity) }

// IsCharacterNotFound reports whether the named character does not exist on
// the account.
func IsCharacterNotFound(err error) bool { return hasCode(err, CodeCharacterNotFound) }

// IsLevelTooLow reports whether a level or skill level requirement was not
// met.
func IsLevelTooLow(err error) bool {
	return hasCode(err, CodeLevelTooLow) || hasCode(err, CodeSkillLevelTooLow)
}

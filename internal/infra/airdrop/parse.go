package airdrop

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vietddude/airdrop-checker/internal/core/domain"
)

// verdict is the status and message assigned to one address.
type verdict struct {
	status  domain.EligibilityStatus
	message string
}

// matcher recognizes one response shape. It reports false when the shape
// does not apply so the next matcher can try.
type matcher func(body map[string]any, address string) (verdict, bool)

// The service has answered in several shapes over time. Order matters:
// the first matching shape wins.
var matchers = []matcher{
	matchScoreDetail,     // {"detail":{"evm":{"0x..":"1"}}}
	matchAddressKey,      // {"0x..": {...}}
	matchEligibleList,    // {"eligible":["0x.."]}
	matchNotEligibleList, // {"notEligible":["0x.."]}
	matchTopLevelStatus,  // {"status":"eligible"} / {"eligible":true}
}

// interpret assigns a verdict for address from a decoded response body.
func interpret(body any, address string) verdict {
	var obj map[string]any
	switch b := body.(type) {
	case map[string]any:
		obj = b
	case []any:
		// An array has no usable keys; only the top-level parse applies.
		obj = map[string]any{}
	default:
		return verdict{domain.StatusError, domain.MsgUnknownStatus}
	}

	for _, m := range matchers {
		if v, ok := m(obj, address); ok {
			return v
		}
	}
	return verdict{domain.StatusError, domain.MsgUnknownStatus}
}

func matchScoreDetail(body map[string]any, address string) (verdict, bool) {
	scores, ok := scoreDetail(body)
	if !ok {
		return verdict{}, false
	}

	score := scores[strings.ToLower(address)]
	if hasScore(score) {
		return verdict{domain.StatusEligible, "Eligible with score: " + display(score)}, true
	}
	return verdict{domain.StatusNotEligible, domain.MsgNoScore}, true
}

func matchAddressKey(body map[string]any, address string) (verdict, bool) {
	entry, ok := body[address]
	if !ok || !truthy(entry) {
		return verdict{}, false
	}
	status := parseStatus(entry)
	return verdict{status, messageOr(entry, status)}, true
}

func matchEligibleList(body map[string]any, address string) (verdict, bool) {
	list, ok := body["eligible"].([]any)
	if !ok {
		return verdict{}, false
	}
	status := domain.StatusNotEligible
	if containsString(list, address) {
		status = domain.StatusEligible
	}
	return verdict{status, status.Message()}, true
}

func matchNotEligibleList(body map[string]any, address string) (verdict, bool) {
	list, ok := body["notEligible"].([]any)
	if !ok {
		return verdict{}, false
	}
	status := domain.StatusEligible
	if containsString(list, address) {
		status = domain.StatusNotEligible
	}
	return verdict{status, status.Message()}, true
}

func matchTopLevelStatus(body map[string]any, _ string) (verdict, bool) {
	status := parseStatus(body)
	return verdict{status, messageOr(body, status)}, true
}

// parseStatus derives a status from an object without regard to any
// particular address.
func parseStatus(v any) domain.EligibilityStatus {
	obj, ok := v.(map[string]any)
	if !ok {
		return domain.StatusError
	}

	if scores, ok := scoreDetail(obj); ok {
		for _, s := range scores {
			if hasScore(s) {
				return domain.StatusEligible
			}
		}
		return domain.StatusNotEligible
	}

	raw := obj["status"]
	if !truthy(raw) {
		raw = obj["eligible"]
	}

	switch x := raw.(type) {
	case bool:
		if x {
			return domain.StatusEligible
		}
		return domain.StatusNotEligible
	case string:
		switch domain.EligibilityStatus(x) {
		case domain.StatusEligible:
			return domain.StatusEligible
		case domain.StatusNotEligible:
			return domain.StatusNotEligible
		}
	}
	return domain.StatusError
}

// scoreDetail returns the detail.evm score map when present.
// A present but non-object evm value behaves as an empty map.
func scoreDetail(body map[string]any) (map[string]any, bool) {
	detail, ok := body["detail"].(map[string]any)
	if !ok {
		return nil, false
	}
	evm := detail["evm"]
	if !truthy(evm) {
		return nil, false
	}
	scores, _ := evm.(map[string]any)
	return scores, true
}

// hasScore reports a nonzero score. The string "0" counts as zero.
func hasScore(v any) bool {
	if s, ok := v.(string); ok && s == "0" {
		return false
	}
	return truthy(v)
}

func messageOr(v any, status domain.EligibilityStatus) string {
	if obj, ok := v.(map[string]any); ok && truthy(obj["message"]) {
		return display(obj["message"])
	}
	return status.Message()
}

func containsString(list []any, s string) bool {
	for _, item := range list {
		if str, ok := item.(string); ok && str == s {
			return true
		}
	}
	return false
}

// truthy follows the loose truthiness the service's web client relies on:
// null, false, zero and "" are false; objects and arrays are true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

func display(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

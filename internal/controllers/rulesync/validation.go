package rulesync

import (
	"crypto/subtle"
	"encoding/json"
	"errors"

	"github.com/DIMO-Network/messenger-autoresponder/internal/rules"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

// validatePassword compares the supplied password with the configured one.
// An unconfigured password rejects every request.
func validatePassword(password, expected string) error {
	if expected == "" || subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return richerrors.Error{
			ExternalMsg: "Invalid sync password",
			Code:        fiber.StatusForbidden,
		}
	}
	return nil
}

// parseRules checks that raw is a JSON array and converts each element to a rule.
// Rule fields are not validated: a field that is not a string is dropped, so a rule without a keyword is kept but never matches.
func parseRules(raw json.RawMessage) (rules.RuleSet, error) {
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() || !gjson.ValidBytes(raw) {
		return nil, richerrors.Error{
			ExternalMsg: "Invalid rules format",
			Err:         errors.New("rules is not an array"),
			Code:        fiber.StatusBadRequest,
		}
	}

	set := rules.RuleSet{}
	parsed.ForEach(func(_, element gjson.Result) bool {
		set = append(set, ruleFromJSON(element))
		return true
	})
	return set, nil
}

func ruleFromJSON(element gjson.Result) rules.Rule {
	var rule rules.Rule
	if keyword := element.Get("triggerKeyword"); keyword.Type == gjson.String {
		value := keyword.String()
		rule.TriggerKeyword = &value
	}
	if reply := element.Get("textMessage"); reply.Type == gjson.String {
		rule.TextMessage = reply.String()
	}
	return rule
}

package rules

import "strings"

// Rule pairs a trigger keyword with the reply sent when the keyword appears in a message.
type Rule struct {
	// TriggerKeyword is matched case-insensitively as a substring of the inbound text.
	// Nil means the keyword was missing and the rule never matches. An empty keyword matches every message.
	TriggerKeyword *string `json:"triggerKeyword,omitempty"`
	// TextMessage is the reply body sent back to the sender.
	TextMessage string `json:"textMessage"`
}

// New creates a rule that answers keyword with reply.
func New(keyword, reply string) Rule {
	return Rule{TriggerKeyword: &keyword, TextMessage: reply}
}

// Keyword returns the trigger keyword, or "" when it is missing.
func (r Rule) Keyword() string {
	if r.TriggerKeyword == nil {
		return ""
	}
	return *r.TriggerKeyword
}

// RuleSet is an ordered list of rules. Order decides match precedence.
type RuleSet []Rule

// Match returns the first rule whose keyword is contained in text, ignoring case.
func Match(text string, set RuleSet) (Rule, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range set {
		if rule.TriggerKeyword != nil && strings.Contains(lowered, strings.ToLower(*rule.TriggerKeyword)) {
			return rule, true
		}
	}
	return Rule{}, false
}

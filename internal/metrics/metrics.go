// Package metrics holds the Prometheus collectors exposed on the monitoring server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "messenger_autoresponder"

// Inbound message outcomes.
const (
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
	OutcomeSkipped   = "skipped"
	OutcomeDuplicate = "duplicate"
	OutcomeEcho      = "echo"
)

// Reply and rule update statuses.
const (
	StatusSuccess      = "success"
	StatusFailed       = "failed"
	StatusUnauthorized = "unauthorized"
	StatusInvalid      = "invalid"
)

var (
	// InboundMessages counts messaging events by what the webhook did with them.
	InboundMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inbound_messages_total",
		Help:      "Messaging events received on the webhook, by outcome.",
	}, []string{"outcome"})

	// Replies counts Send API calls by result.
	Replies = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "replies_total",
		Help:      "Auto replies sent to the Send API, by status.",
	}, []string{"status"})

	// ReplyDuration observes Send API latency.
	ReplyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reply_duration_seconds",
		Help:      "Time spent calling the Send API.",
		Buckets:   prometheus.DefBuckets,
	})

	// RuleUpdates counts dashboard sync requests by status.
	RuleUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rule_updates_total",
		Help:      "Rule update requests, by status.",
	}, []string{"status"})

	// ActiveRules is the size of the rule set currently used for matching.
	ActiveRules = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_rules",
		Help:      "Number of rules in the active rule set.",
	})
)

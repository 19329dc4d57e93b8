// Package metrics defines all custom Prometheus metrics for the showcase
// backend. It is the single source of truth for metric names, labels, and
// help strings; registration happens at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "showcase"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// VotesTotal counts accepted vote operations.
// Labels:
//   - direction: "like" or "dislike"
//   - action: "cast" or "undo"
var VotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_total",
		Help:      "Total number of accepted votes, by direction and action.",
	},
	[]string{"direction", "action"},
)

// RankPurchasesTotal counts successful rank purchases (manual and automatic).
// Label:
//   - rank: the rank that was bought
var RankPurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rank_purchases_total",
		Help:      "Total number of rank purchases, by target rank.",
	},
	[]string{"rank"},
)

// TokensPurchasedTotal sums tokens added through the buy-tokens ledger.
var TokensPurchasedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_purchased_total",
		Help:      "Total number of tokens added to user balances.",
	},
)

// UploadsTotal counts stored image uploads.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of stored image uploads.",
	},
)

// FeedbackTotal counts accepted feedback submissions.
var FeedbackTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_total",
		Help:      "Total number of feedback entries submitted.",
	},
)

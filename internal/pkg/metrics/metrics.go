// Package metrics defines and registers all custom Prometheus metrics for the
// rent-a-car API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time;
// the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rentacar"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts bearer-token validation outcomes.
// Label:
//   - result: "valid" or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of session token validations, labelled by result.",
	},
	[]string{"result"},
)

// PasswordUpdatesTotal counts password-change attempts.
// Label:
//   - result: "success", "mismatch", or "built_in"
var PasswordUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_updates_total",
		Help:      "Total number of password update attempts, labelled by result.",
	},
	[]string{"result"},
)

// ContactMessagesCreatedTotal counts messages submitted by visitors.
var ContactMessagesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_created_total",
		Help:      "Total number of contact messages created.",
	},
)

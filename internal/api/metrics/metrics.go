// Package metrics defines the custom Prometheus metrics of the Kusina API.
// All metrics register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kusina"

// Auth outcome labels.
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// AuthAttemptsTotal counts signup and login attempts.
// Labels:
//   - operation: "signup" or "login"
//   - result: "success", "rejected" (client-side failure) or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of signup and login attempts, by outcome.",
	},
	[]string{"operation", "result"},
)

// CollectionTogglesTotal counts favorite and saved-list toggles.
// Labels:
//   - collection: "favorites" or "savedList"
//   - action: "added" or "removed"
var CollectionTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collection_toggles_total",
		Help:      "Total number of successful collection toggles.",
	},
	[]string{"collection", "action"},
)

// RecipesCreatedTotal counts recipes added by admins.
var RecipesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_created_total",
		Help:      "Total number of recipes created.",
	},
)

// RecipesDeletedTotal counts recipes removed by admins.
var RecipesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_deleted_total",
		Help:      "Total number of recipes deleted.",
	},
)

// ToggleAction maps the added flag of a toggle to its label value.
func ToggleAction(added bool) string {
	if added {
		return "added"
	}
	return "removed"
}

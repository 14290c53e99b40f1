package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReactionToggles counts toggle requests by requested kind and outcome.
var ReactionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "socialnet_reaction_toggles_total",
	Help: "Total reaction toggle requests, labeled by kind and outcome.",
}, []string{"kind", "outcome"})

// ReactionConflictRetries counts toggle transactions retried after a write
// conflict.
var ReactionConflictRetries = promauto.NewCounter(prometheus.CounterOpts{
	Name: "socialnet_reaction_conflict_retries_total",
	Help: "Total toggle transactions retried after a storage conflict.",
})

// PostsCreated counts created posts.
var PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "socialnet_posts_created_total",
	Help: "Total posts created.",
})

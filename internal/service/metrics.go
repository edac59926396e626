package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	topicsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_topics_created_total",
		Help: "Total number of topics started",
	})

	postsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_posts_created_total",
		Help: "Total number of posts created, seed posts included",
	})

	topicViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_topic_views_total",
		Help: "Total number of thread views served",
	})
)

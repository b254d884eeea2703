package model

// MonthlySubscribers counts subscriptions started in a calendar month.
type MonthlySubscribers struct {
	Month int
	Count int
}

// SubscriberStats aggregates subscription analytics.
type SubscriberStats struct {
	Total        int
	NewLastMonth int
	Monthly      []MonthlySubscribers
}

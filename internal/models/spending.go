package models

import "time"

// Expense is a one-off spend record.
type Expense struct {
	ID       string    `json:"id"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Note     string    `json:"note,omitempty"`
	Date     time.Time `json:"date"`
}

// Subscription is a recurring monthly charge.
type Subscription struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MonthlyCost float64   `json:"monthly_cost"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryTotal is spend aggregated for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// ExpenseSummary aggregates expenses over a window.
type ExpenseSummary struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Total      float64         `json:"total"`
	Count      int             `json:"count"`
	Categories []CategoryTotal `json:"categories"`
}

// SubscriptionSummary aggregates recurring costs.
type SubscriptionSummary struct {
	Subscriptions []Subscription `json:"subscriptions"`
	MonthlyTotal  float64        `json:"monthly_total"`
	AnnualTotal   float64        `json:"annual_total"`
}

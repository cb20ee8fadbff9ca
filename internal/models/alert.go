package models

import "time"

// AlertCondition is the direction a price alert watches.
type AlertCondition string

const (
	AlertAbove AlertCondition = "above"
	AlertBelow AlertCondition = "below"
)

// Valid reports whether the condition is a known value.
func (c AlertCondition) Valid() bool {
	return c == AlertAbove || c == AlertBelow
}

// Alert is a user-defined price threshold. Never mutated after creation;
// removed by user command.
type Alert struct {
	ID          string         `json:"id"`
	Symbol      string         `json:"symbol"`
	Condition   AlertCondition `json:"condition"`
	TargetPrice float64        `json:"target_price"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TriggeredAlert pairs an alert with the price that tripped it.
type TriggeredAlert struct {
	Alert        Alert   `json:"alert"`
	CurrentPrice float64 `json:"current_price"`
}

// AlertCheckResult is the outcome of evaluating a set of alerts against
// current quotes. Triggered preserves the input order of the alerts;
// Skipped counts alerts with no usable quote (no verdict either way).
type AlertCheckResult struct {
	Checked   int              `json:"checked"`
	Skipped   int              `json:"skipped"`
	Triggered []TriggeredAlert `json:"triggered"`
	CheckedAt time.Time        `json:"checked_at"`
}

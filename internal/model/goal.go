package model

import (
	"math"
	"time"
)

// GoalCategory classifies a savings goal.
type GoalCategory string

const (
	GoalRetirement GoalCategory = "retirement"
	GoalEmergency  GoalCategory = "emergency"
	GoalHouse      GoalCategory = "house"
	GoalEducation  GoalCategory = "education"
	GoalVacation   GoalCategory = "vacation"
	GoalCustom     GoalCategory = "custom"
)

// Valid reports whether the category is one of the closed set.
func (c GoalCategory) Valid() bool {
	switch c {
	case GoalRetirement, GoalEmergency, GoalHouse, GoalEducation, GoalVacation, GoalCustom:
		return true
	}
	return false
}

// GoalPriority ranks a goal relative to the user's other goals.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Valid reports whether the priority is one of the closed set.
func (p GoalPriority) Valid() bool {
	switch p {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
		return true
	}
	return false
}

// Goal is a user-defined savings target.
type Goal struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Category            GoalCategory `json:"category"`
	TargetAmount        float64      `json:"targetAmount"`  // > 0
	CurrentAmount       float64      `json:"currentAmount"` // >= 0
	TargetDate          time.Time    `json:"targetDate"`
	Priority            GoalPriority `json:"priority"`
	MonthlyContribution float64      `json:"monthlyContribution"` // >= 0
	CreatedAt           time.Time    `json:"createdAt"`
}

// ProgressPercent returns current/target as a percentage, capped at 100.
// A zero target amount yields 0 rather than a division error.
func (g Goal) ProgressPercent() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return math.Min(g.CurrentAmount/g.TargetAmount*100, 100)
}

// DaysRemaining returns the number of whole days between now and the target
// date. Past target dates yield negative values.
func (g Goal) DaysRemaining(now time.Time) int {
	return int(g.TargetDate.Sub(now).Hours() / 24)
}

// MonthlyRequired returns the monthly contribution needed to close the gap
// between current and target amount by the target date. Already-met goals
// return 0; a target date in the past or under a month away counts as one
// month remaining.
func (g Goal) MonthlyRequired(now time.Time) float64 {
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining <= 0 {
		return 0
	}
	months := float64(g.DaysRemaining(now)) / 30.0
	return remaining / math.Max(1, months)
}

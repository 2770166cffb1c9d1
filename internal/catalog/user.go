// Package catalog contains the core data types of the recipe catalog.
package catalog

import "strings"

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Plan      Plan      `json:"plan"`
	CreatedAt Timestamp `json:"createdAt"`
}

func (u User) Clone() User {
	return u
}

type CreateUserInput struct {
	Email    string
	FullName string
	Plan     Plan
}

// Normalize lower-cases and trims the email, trims the name and
// defaults the plan to free.
func (in CreateUserInput) Normalize() CreateUserInput {
	out := in
	out.Email = strings.ToLower(strings.TrimSpace(in.Email))
	out.FullName = strings.TrimSpace(in.FullName)
	if out.Plan == "" {
		out.Plan = PlanFree
	}
	return out
}

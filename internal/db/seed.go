package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

type seedGoal struct {
	category    string
	description string
}

// The practice-wide goal template catalogue inserted into a fresh
// store. Four fixed categories, eighteen templates.
var defaultGoalTemplates = []seedGoal{
	{"Emotional & Psychological Well-being", "Enhance emotional expression and regulation"},
	{"Emotional & Psychological Well-being", "Increase self-awareness and self-esteem"},
	{"Emotional & Psychological Well-being", "Process and integrate psychological trauma"},
	{"Emotional & Psychological Well-being", "Reduce symptoms of anxiety, depression, and stress"},
	{"Emotional & Psychological Well-being", "Improve mood and overall quality of life"},
	{"Emotional & Psychological Well-being", "Develop positive coping mechanisms"},
	{"Physical Health & Function", "Increase body awareness and mind-body connection"},
	{"Physical Health & Function", "Improve coordination, balance, strength, and flexibility"},
	{"Physical Health & Function", "Reduce muscle tension and chronic pain"},
	{"Physical Health & Function", "Enhance motor skills and range of motion"},
	{"Social & Interpersonal Functioning", "Develop effective verbal and nonverbal communication skills"},
	{"Social & Interpersonal Functioning", "Build trust and empathy in relationships"},
	{"Social & Interpersonal Functioning", "Enhance interpersonal relationships and social interaction"},
	{"Social & Interpersonal Functioning", "Overcome social isolation and foster a sense of belonging"},
	{"Cognitive Function & Insight", "Improve executive function, attention, and memory"},
	{"Cognitive Function & Insight", "Gain insight into personal behaviors and patterns"},
	{"Cognitive Function & Insight", "Enhance problem-solving abilities"},
	{"Cognitive Function & Insight", "Stimulate neuroplasticity and brain function"},
}

// Seed inserts the default goal template catalogue and the default
// administrator account into an empty store. Re-running against a
// populated store is a no-op.
func Seed(ctx context.Context, database *sql.DB) error {
	var goalCount int
	if err := database.QueryRowContext(ctx, "SELECT count(*) FROM goal_templates").Scan(&goalCount); err != nil {
		return fmt.Errorf("failed to count goal templates: %w", err)
	}
	if goalCount == 0 {
		for _, g := range defaultGoalTemplates {
			if _, err := database.ExecContext(ctx,
				"INSERT INTO goal_templates (category, description) VALUES (?, ?)",
				g.category, g.description); err != nil {
				return fmt.Errorf("failed to seed goal templates: %w", err)
			}
		}
		log.Printf("✓ Seeded %d goal templates", len(defaultGoalTemplates))
	}

	var userCount int
	if err := database.QueryRowContext(ctx, "SELECT count(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		if _, err := database.ExecContext(ctx,
			"INSERT INTO users (username, password_hash) VALUES (?, ?)",
			"admin", string(hash)); err != nil {
			return fmt.Errorf("failed to seed default user: %w", err)
		}
		log.Println("✓ Seeded default administrator account")
	}

	return nil
}

package database

import (
	"context"
	"fmt"
)

// schemaStatements create the job portal schema. Every statement is guarded so
// running them against an initialized database is a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		user_type VARCHAR(20) NOT NULL CHECK (user_type IN ('applicant', 'employer')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS employers (
		employer_id INT PRIMARY KEY REFERENCES users(user_id),
		company_name VARCHAR(255) NOT NULL,
		website VARCHAR(255),
		location VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS applicants (
		applicant_id INT PRIMARY KEY REFERENCES users(user_id),
		resume_link VARCHAR(255),
		skills TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		job_id SERIAL PRIMARY KEY,
		employer_id INT NOT NULL REFERENCES employers(employer_id),
		job_title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		location VARCHAR(255) NOT NULL,
		salary NUMERIC(10,2) NOT NULL,
		posted_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		application_id SERIAL PRIMARY KEY,
		job_id INT NOT NULL REFERENCES jobs(job_id),
		applicant_id INT NOT NULL REFERENCES applicants(applicant_id),
		application_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(20) NOT NULL DEFAULT 'applied'
			CHECK (status IN ('applied', 'reviewed', 'rejected', 'accepted'))
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS applications_job_applicant_key
		ON applications (job_id, applicant_id)`,
	`CREATE TABLE IF NOT EXISTS admins (
		admin_id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL
	)`,
}

// InitSchema creates any missing tables and indexes. It is run once at boot.
func InitSchema(ctx context.Context, db DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

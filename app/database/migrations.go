package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates tables and applies schema updates on startup.
// Every statement is idempotent so restarts are safe.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL,
			solo_percentage INTEGER DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS model_finances (
			id SERIAL PRIMARY KEY,
			model_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			cb_tokens INTEGER DEFAULT 0,
			sp_tokens INTEGER DEFAULT 0,
			soda_tokens INTEGER DEFAULT 0,
			cam4_tokens NUMERIC(12,2) DEFAULT 0,
			cb_income NUMERIC(12,2) DEFAULT 0,
			sp_income NUMERIC(12,2) DEFAULT 0,
			soda_income NUMERIC(12,2) DEFAULT 0,
			cam4_income NUMERIC(12,2) DEFAULT 0,
			transfers NUMERIC(12,2) DEFAULT 0,
			operator_name VARCHAR(255) DEFAULT '',
			operator_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
			has_shift BOOLEAN DEFAULT false,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (model_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS operator_model_assignments (
			id SERIAL PRIMARY KEY,
			operator_email VARCHAR(255) NOT NULL,
			model_email VARCHAR(255) NOT NULL,
			model_id INTEGER NOT NULL UNIQUE,
			operator_percentage NUMERIC(5,2) NOT NULL DEFAULT 20,
			assigned_by VARCHAR(255) DEFAULT '',
			assigned_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS producer_assignments (
			id SERIAL PRIMARY KEY,
			producer_email VARCHAR(255) NOT NULL,
			model_email VARCHAR(255) DEFAULT '',
			operator_email VARCHAR(255) DEFAULT '',
			assignment_type VARCHAR(10) NOT NULL,
			assigned_by VARCHAR(255) DEFAULT '',
			assigned_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS schedule (
			id SERIAL PRIMARY KEY,
			apartment_name VARCHAR(255) NOT NULL,
			apartment_address VARCHAR(255) DEFAULT '',
			week_number INTEGER NOT NULL,
			date VARCHAR(10) NOT NULL,
			day_name VARCHAR(20) DEFAULT '',
			time_10 VARCHAR(255) DEFAULT '',
			time_17 VARCHAR(255) DEFAULT '',
			time_00 VARCHAR(255) DEFAULT '',
			UNIQUE (apartment_name, apartment_address, date)
		)`,
		`CREATE TABLE IF NOT EXISTS salary_adjustments (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL,
			period_start DATE NOT NULL,
			period_end DATE NOT NULL,
			advance NUMERIC(12,2) DEFAULT 0,
			penalty NUMERIC(12,2) DEFAULT 0,
			expenses NUMERIC(12,2) DEFAULT 0,
			updated_by VARCHAR(255) DEFAULT '',
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (email, period_start, period_end)
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			priority VARCHAR(10) NOT NULL DEFAULT 'medium',
			assigned_to_email VARCHAR(255) NOT NULL,
			assigned_by_email VARCHAR(255) NOT NULL,
			due_date DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			completed_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE TABLE IF NOT EXISTS task_comments (
			id SERIAL PRIMARY KEY,
			task_id INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			author_email VARCHAR(255) NOT NULL,
			text TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS blocked_dates (
			id SERIAL PRIMARY KEY,
			blocked_date DATE NOT NULL,
			platform VARCHAR(20) NOT NULL DEFAULT 'all',
			reason VARCHAR(255) DEFAULT '',
			created_by VARCHAR(255) DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (blocked_date, platform)
		)`,
		`CREATE TABLE IF NOT EXISTS director_finances (
			id SERIAL PRIMARY KEY,
			period_start DATE NOT NULL,
			period_end DATE NOT NULL,
			expenses NUMERIC(12,2) DEFAULT 0,
			issued_funds NUMERIC(12,2) DEFAULT 0,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (period_start, period_end)
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	migrations := []string{
		// operator_id was added after launch; legacy rows carry only the name
		`ALTER TABLE model_finances ADD COLUMN IF NOT EXISTS operator_id INTEGER REFERENCES users(id) ON DELETE SET NULL`,
		`ALTER TABLE users ADD COLUMN IF NOT EXISTS solo_percentage INTEGER DEFAULT 0`,
		// A model belongs to at most one producer; duplicates made payroll
		// depend on row order, so uniqueness is enforced on the write path
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_producer_model_unique
			ON producer_assignments (model_email) WHERE assignment_type = 'model'`,
		`CREATE INDEX IF NOT EXISTS idx_model_finances_date ON model_finances(date)`,
		`CREATE INDEX IF NOT EXISTS idx_model_finances_model_id ON model_finances(model_id)`,
		`CREATE INDEX IF NOT EXISTS idx_producer_assignments_producer ON producer_assignments(producer_email)`,
		`CREATE INDEX IF NOT EXISTS idx_salary_adjustments_period ON salary_adjustments(period_start, period_end)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_assigned_to ON tasks(assigned_to_email)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_assigned_by ON tasks(assigned_by_email)`,
		`CREATE INDEX IF NOT EXISTS idx_task_comments_task ON task_comments(task_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running migration: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

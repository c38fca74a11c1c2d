package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/lib/pq"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, full_name, role, solo_percentage, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName,
		&user.Role, &user.SoloPercentage, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, full_name, role, solo_percentage, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName,
		&user.Role, &user.SoloPercentage, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByFullName matches the exact full name as entered on a finance
// record. Used to resolve the operator of a shift from legacy rows that
// carry only the free-text name.
func GetUserByFullName(db *sql.DB, fullName string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, full_name, role, solo_percentage, is_active, created_at, updated_at
			  FROM users WHERE full_name = $1 AND deleted_at IS NULL
			  ORDER BY id LIMIT 1`

	err := db.QueryRow(query, strings.TrimSpace(fullName)).Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName,
		&user.Role, &user.SoloPercentage, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func ListUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, email, full_name, role, solo_percentage, is_active, created_at, updated_at
			  FROM users WHERE deleted_at IS NULL ORDER BY full_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.FullName, &user.Role,
			&user.SoloPercentage, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// ListUsersByRole returns active users whose role is in the given set.
func ListUsersByRole(db *sql.DB, roles ...models.UserRole) ([]*models.User, error) {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}

	query := `SELECT id, email, full_name, role, solo_percentage, is_active, created_at, updated_at
			  FROM users WHERE role = ANY($1) AND deleted_at IS NULL ORDER BY full_name`

	rows, err := db.Query(query, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.FullName, &user.Role,
			&user.SoloPercentage, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password_hash, full_name, role, solo_percentage, is_active)
			  VALUES ($1, $2, $3, $4, $5, true)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(
		query, user.Email, user.Password, user.FullName, user.Role, user.SoloPercentage,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func UpdateUser(db *sql.DB, user *models.User) error {
	query := `UPDATE users
			  SET full_name = $1, role = $2, solo_percentage = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $5 AND deleted_at IS NULL`

	result, err := db.Exec(query, user.FullName, user.Role, user.SoloPercentage, user.IsActive, user.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user %d not found", user.ID)
	}
	return nil
}

func DeleteUser(db *sql.DB, userID int) error {
	query := `UPDATE users SET deleted_at = NOW(), is_active = false WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, userID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID int, hashedPassword string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

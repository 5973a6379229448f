package datastore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/prism-palette/api/models"
)

type UserRepository interface {
	Create(user models.User) (models.User, error)
	Get(userID string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	DeleteUserByID(userID string) error
	ValidateAndGetUser(credentials models.Credentials) (models.User, error)
	GetAllUsers() ([]models.User, error)
}

func NewUserDatabase(db *sqlx.DB) (UserDatabase, error) {
	var UserDatabase UserDatabase
	UserDatabase.database = db
	return UserDatabase, nil
}

type UserDatabase struct {
	database *sqlx.DB
}

const userColumns = `user_id, username, email, password_hash, kind, created_at, updated_at`

func (udb UserDatabase) Create(user models.User) (models.User, error) {
	db := udb.database

	_, insertErr := db.NamedExec(`
		INSERT INTO users (
			user_id,
			username,
			email,
			password_hash,
			kind,
			created_at,
			updated_at
		) VALUES (
			:user_id,
			:username,
			:email,
			:password_hash,
			:kind,
			:created_at,
			:updated_at
		)`, user)

	if insertErr != nil {
		return user, insertErr
	}

	return user, nil
}

func (udb UserDatabase) Get(userID string) (models.User, error) {
	return udb.getOne(`SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID)
}

func (udb UserDatabase) GetUserByEmail(email string) (models.User, error) {
	return udb.getOne(`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (udb UserDatabase) GetUserByUsername(username string) (models.User, error) {
	return udb.getOne(`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

func (udb UserDatabase) getOne(query string, arg string) (models.User, error) {
	db := udb.database

	var user models.User
	scanErr := db.Get(&user, db.Rebind(query), arg)
	switch {
	case errors.Is(scanErr, sql.ErrNoRows):
		return models.User{}, NoRowsError{true, scanErr}
	case scanErr != nil:
		return models.User{}, scanErr
	}
	return user, nil
}

func (udb UserDatabase) GetAllUsers() ([]models.User, error) {
	db := udb.database

	users := []models.User{}
	if err := db.Select(&users, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`); err != nil {
		return []models.User{}, err
	}
	return users, nil
}

func (udb UserDatabase) DeleteUserByID(userID string) error {
	db := udb.database
	_, delErr := db.Exec(db.Rebind("DELETE FROM users WHERE user_id = ?"), userID)
	if delErr != nil {
		return fmt.Errorf("delete failed: %v", delErr)
	}

	return nil
}

func (udb UserDatabase) ValidateAndGetUser(credentials models.Credentials) (models.User, error) {
	user, err := udb.GetUserByEmail(credentials.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("error in row scan %v", err)
	}

	if bcryptErr := user.CheckPassword(credentials.Password); bcryptErr != nil {
		return models.User{}, fmt.Errorf("error in compare of hash %v", bcryptErr)
	}
	return user, nil
}

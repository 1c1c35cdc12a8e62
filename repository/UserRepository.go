package repository

import (
	"database/sql"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"storefront/models"
)

type UserRepository interface {
	GetUserById(id int) (user models.User_db, exists bool, err error)
	GetUserByName(name string) (user models.User_db, exists bool, err error)
	AddNewUser(user models.User_db) (newUserId int, err error)
	EncryptPassword(plain string) (hashed string, err error)
	VerifyPassword(hashed string, sent string) bool
}

type UserRepo struct {
	db *sql.DB
}

func NewUserRepository(conn *sql.DB) (UserRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &UserRepo{
		db: conn,
	}, nil
}

func (u *UserRepo) GetUserById(id int) (user models.User_db, exists bool, err error) {
	row := u.db.QueryRow("SELECT Id, Nickname, Password, Role FROM Users WHERE Id = $1", id)
	err = row.Scan(&user.Id, &user.Nickname, &user.Password, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetUserById: %v", err)
			err = models.ErrUpstream
		}
		return
	}
	exists = true
	return
}

func (u *UserRepo) GetUserByName(name string) (user models.User_db, exists bool, err error) {
	row := u.db.QueryRow("SELECT Id, Nickname, Password, Role FROM Users WHERE Nickname = $1", name)
	err = row.Scan(&user.Id, &user.Nickname, &user.Password, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetUserByName: %v", err)
			err = models.ErrUpstream
		}
		return
	}
	exists = true
	return
}

func (u *UserRepo) AddNewUser(user models.User_db) (newUserId int, err error) {
	err = u.db.QueryRow(
		"INSERT INTO Users (Nickname, Password, Role) VALUES ($1, $2, $3) RETURNING Id",
		user.Nickname, user.Password, user.Role,
	).Scan(&newUserId)
	if err != nil {
		log.Printf("AddNewUser: %v", err)
		err = models.ErrUpstream
	}
	return
}

func (u *UserRepo) EncryptPassword(plain string) (hashed string, err error) {
	password, e := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if e != nil {
		log.Printf("EncryptPassword: %v", e)
		err = models.ErrUpstream
		return
	}
	hashed = string(password)
	return
}

func (u *UserRepo) VerifyPassword(hashed string, sent string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(sent)) == nil
}

package services

import (
	"log"

	"storefront/models"
	"storefront/repository"
)

type UserService struct {
	ur repository.UserRepository
	sr repository.SessionRepository
}

func NewUserService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) UserService {
	return UserService{
		ur: userRepo,
		sr: sessionRepo,
	}
}

func (us *UserService) SignupRequest(creds models.Credentials) (user models.User_db, err error) {
	if creds.Username == "" || creds.Password == "" {
		err = models.ErrValidation
		return
	}
	user.Nickname = creds.Username
	user.Role = "user"

	_, exists, err := us.ur.GetUserByName(user.Nickname)
	if err != nil {
		return
	}
	if exists {
		log.Printf("SignupRequest: user already exists")
		err = models.ErrValidation
		return
	}
	user.Password, err = us.ur.EncryptPassword(creds.Password)
	if err != nil {
		return
	}
	user.Id, err = us.ur.AddNewUser(user)
	return
}

func (us *UserService) SigninRequest(name, password string) (user models.User_db, sessionId string, err error) {
	user, exists, err := us.ur.GetUserByName(name)
	if err != nil {
		return
	}
	if !exists {
		log.Printf("SigninRequest: user not found")
		err = models.ErrUnauthorized
		return
	}
	if !us.ur.VerifyPassword(user.Password, password) {
		log.Printf("SigninRequest: wrong password")
		err = models.ErrUnauthorized
		return
	}
	sessionId, err = us.sr.CreateSession(user.Id, user.Role)
	return
}

func (us *UserService) DeleteSessionRequest(sessionId string) (err error) {
	err = us.sr.DeleteSession(sessionId)
	return
}

func (us *UserService) CheckAuth(sessionId string) (bool, error) {
	return us.sr.CheckSession(sessionId)
}

// CheckAccess distinguishes a missing session from a session without the
// admin role, so the caller can answer 401 versus 403.
func (us *UserService) CheckAccess(sessionId string) (err error) {
	_, role, exists, e := us.sr.GetUserSessionInfo(sessionId)
	if e != nil {
		err = e
		return
	}
	if !exists {
		err = models.ErrUnauthorized
		return
	}
	if role != "admin" {
		err = models.ErrForbidden
	}
	return
}

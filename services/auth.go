package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"mediflow/config/authorization"
	"mediflow/config/db"
	"mediflow/models"
	"mediflow/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type PasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hashed string, input string) error {
	if strings.TrimSpace(hashed) == "" {
		return errors.New("stored password missing or invalid")
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(input))
}

/*
* Validate the input fields
* Reject duplicate emails
* Hash the password and insert the user
* Issue a token for the fresh account
 */
func Register(c *gin.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if strings.TrimSpace(input.Name) == "" {
		return nil, util.ValidationError(util.NAME_IS_REQUIRED)
	}
	if input.Email == "" {
		return nil, util.ValidationError(util.EMAIL_IS_REQUIRED)
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, util.ValidationError(util.PASSWORD_IS_REQUIRED)
	}
	if input.Role == "" {
		input.Role = "receptionist"
	}

	collection := db.OpenCollections(util.UserCollection)
	existing := make(map[string]interface{})
	err := db.FindOne(c, collection, bson.M{"email": input.Email}, &existing)
	if err == nil {
		log.Println("Register rejected, email already in use:", input.Email)
		return nil, util.ConflictError(util.USER_ALREADY_EXISTS)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error from findOne while checking email:", err)
		return nil, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Println("Error from hashPassword:", err)
		return nil, errors.New(util.FAILED_TO_HASH_PASSWORD)
	}
	user := models.User{
		Name:      strings.TrimSpace(input.Name),
		Email:     input.Email,
		Password:  hashed,
		Role:      input.Role,
		CreatedAt: time.Now(),
	}
	inserted, err := db.CreateOne(c, collection, user)
	if err != nil {
		log.Println("Error from createOne while inserting user:", err)
		return nil, err
	}
	user.ID = inserted.InsertedID.(primitive.ObjectID)

	token, err := authorization.GenerateJWT(user.ID.Hex(), user.Name, user.Role)
	if err != nil {
		log.Println("Error while generating the token:", err)
		return nil, errors.New(util.FAILED_TO_GENERATE_TOKEN)
	}
	return &AuthResult{
		Token: token,
		User:  models.PublicUser{ID: user.ID.Hex(), Name: user.Name, Email: user.Email, Role: user.Role},
	}, nil
}

/*
* Look the user up by email
* Verify the password against the stored bcrypt hash
* Use the role override from the body when supplied, else the stored role
* Issue a 12 hour token carrying userId and role
 */
func Login(c *gin.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	log.Printf("Login attempt: email=%s role=%s", input.Email, input.Role)

	collection := db.OpenCollections(util.UserCollection)
	var user models.User
	err := db.FindOne(c, collection, bson.M{"email": input.Email}, &user)
	if err != nil {
		log.Println("Login failed, user not found for", input.Email)
		return nil, util.InvalidCredentialsError()
	}
	if err := verifyPassword(user.Password, input.Password); err != nil {
		log.Println("Login failed, password mismatch for", input.Email)
		return nil, util.InvalidCredentialsError()
	}

	role := user.Role
	if input.Role != "" {
		role = input.Role
	}
	token, err := authorization.GenerateJWT(user.ID.Hex(), user.Name, role)
	if err != nil {
		log.Println("Error while generating the token:", err)
		return nil, errors.New(util.FAILED_TO_GENERATE_TOKEN)
	}
	return &AuthResult{
		Token: token,
		User:  models.PublicUser{ID: user.ID.Hex(), Name: user.Name, Role: role},
	}, nil
}

/*
* Load the caller from the token claims
* Verify the current password, then store a hash of the new one
 */
func UpdatePassword(c *gin.Context, input PasswordInput) (string, error) {
	userID := c.GetString("userId")
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		log.Println("Invalid userId in token claims:", userID)
		return "", util.UnauthorizedError(util.UNABLE_TO_FETCH_USER_FROM_CTX)
	}
	if strings.TrimSpace(input.NewPassword) == "" {
		return "", util.ValidationError(util.NEW_PASSWORD_IS_REQUIRED)
	}

	collection := db.OpenCollections(util.UserCollection)
	var user models.User
	if err := db.FindOne(c, collection, bson.M{"_id": oid}, &user); err != nil {
		log.Println("Error from findOne while fetching user:", err)
		return "", util.NotFoundError(util.USER_NOT_FOUND)
	}
	if err := verifyPassword(user.Password, input.CurrentPassword); err != nil {
		return "", util.IncorrectPasswordError()
	}

	hashed, err := HashPassword(input.NewPassword)
	if err != nil {
		log.Println("Error from hashPassword:", err)
		return "", errors.New(util.FAILED_TO_HASH_PASSWORD)
	}
	_, err = db.UpdateOne(c, collection, bson.M{"_id": oid}, bson.M{"$set": bson.M{"password": hashed}})
	if err != nil {
		log.Println("Error from updateOne while updating password:", err)
		return "", err
	}
	return "Password updated successfully", nil
}

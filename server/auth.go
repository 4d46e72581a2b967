package server

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var keySecret string

type User struct {
	Id          string `db:"id" json:"id"`
	Description string `db:"description" json:"description"`
	Password    string `db:"password" json:"password"`
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Auth guards every /api route except login. The SPA sends the token as
// Authorization: Bearer <token>; anything missing or unverifiable is a 401,
// which the client treats as session expiry.
func Auth(c *gin.Context) {
	hdr := c.GetHeader("Authorization")
	if !strings.HasPrefix(hdr, "Bearer ") {
		c.AbortWithStatus(401)
		return
	}
	cl, err := parseToken(strings.TrimPrefix(hdr, "Bearer "))
	if err != nil {
		c.AbortWithStatus(401)
		return
	}
	c.Set("usr_id", cl.(jwt.MapClaims)["usr"])
	c.Next()
}

func createToken(u *User) string {
	token := jwt.New(jwt.SigningMethodHS256)
	token.Claims = jwt.MapClaims{
		"usr": u.Id,
		"des": u.Description,
	}
	tokenString, err := token.SignedString([]byte(keySecret))
	if err != nil {
		return ""
	}
	return tokenString
}

func parseToken(t string) (jwt.Claims, error) {
	tk, err := jwt.Parse(t, func(token *jwt.Token) (interface{}, error) {
		return []byte(keySecret), nil
	})
	if err == nil && tk.Valid {
		return tk.Claims, nil
	}
	return nil, err
}

func login(c *gin.Context) {
	cred := Credentials{}
	if err := c.BindJSON(&cred); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	usr := User{}
	err := DB.Get(&usr, "select * from user where id=?", cred.Username)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid login credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(cred.Password)) != nil {
		c.JSON(401, gin.H{"error": "Invalid login credentials"})
		return
	}
	c.JSON(200, gin.H{"token": createToken(&usr), "username": usr.Id})
}

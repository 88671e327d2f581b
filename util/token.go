package util

import (
	"sync"
	"time"

	"tms/config"

	jwt "github.com/golang-jwt/jwt/v5"
)

type (
	JWTClaims struct {
		UserID   uint   `json:"ui"`
		Username string `json:"un"`
		jwt.RegisteredClaims
	}
	JWTMessage struct {
		UserID   uint   `json:"userID"`
		Username string `json:"username"`
	}
)

type TokenManager struct {
	secretKey      string
	accessTokenTTL int
}

var (
	once     sync.Once
	tokenMgr *TokenManager
)

func GetTokenMgr() *TokenManager {
	once.Do(func() {
		cfg := config.GetConfig()
		tokenMgr = newTokenManager(cfg.Auth.AccessTokenSecret, cfg.Auth.AccessTokenExpiryHour)
	})
	return tokenMgr
}

func newTokenManager(secretKey string, accessTokenTTL int) *TokenManager {
	return &TokenManager{
		secretKey,
		accessTokenTTL,
	}
}

// CreateToken creates a signed access token for msg.
func (tm *TokenManager) CreateToken(msg *JWTMessage) (string, error) {
	expiresAt := time.Now().Add(time.Hour * time.Duration(tm.accessTokenTTL))

	claims := &JWTClaims{
		UserID:   msg.UserID,
		Username: msg.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.secretKey))
}

// CheckToken parses and verifies an access token.
func (tm *TokenManager) CheckToken(requestToken string) (JWTMessage, error) {
	claims := JWTClaims{}
	_, err := jwt.ParseWithClaims(requestToken, &claims, func(_ *jwt.Token) (any, error) {
		return []byte(tm.secretKey), nil
	})
	return JWTMessage{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, err
}

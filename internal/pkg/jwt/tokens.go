package jwt

//go:generate mockgen -source=tokens.go -destination=../../../gen/mocks/jwt/tokens.go -package=jwtmocks

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenIssuer interface {
	IssueToken(secret []byte, userID string, timeLimit time.Duration) (IssuedToken, error)
}

type TokenParser interface {
	ParseToken(secret []byte, tokenString string) (*Claims, error)
}

type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

type JWTTokenIssuer struct {
	now func() time.Time
}

func NewJWTTokenIssuer() *JWTTokenIssuer {
	return &JWTTokenIssuer{now: time.Now}
}

func (ti *JWTTokenIssuer) IssueToken(secret []byte, userID string, timeLimit time.Duration) (IssuedToken, error) {
	now := ti.now()
	expiresAt := now.Add(timeLimit)

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return IssuedToken{}, err
	}

	return IssuedToken{Value: signed, ExpiresAt: expiresAt}, nil
}

type JWTTokenParser struct {
}

func NewJWTTokenParser() *JWTTokenParser {
	return &JWTTokenParser{}
}

func (tp *JWTTokenParser) ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}

		return secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

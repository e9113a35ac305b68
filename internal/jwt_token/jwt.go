package jwttoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"benefitd/pkg/domain"
	dErrors "benefitd/pkg/domain-errors"
	authmw "benefitd/pkg/platform/middleware/auth"
)

// Claims are the caller token claims. The registered subject carries the
// caller principal checked against each module's admin.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService issues and validates HMAC-signed caller tokens.
type JWTService struct {
	signingKey []byte
	issuer     string
	audience   string
}

func NewJWTService(signingKey string, issuer string, audience string) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
	}
}

// GenerateCallerToken signs a token asserting the given principal.
func (s *JWTService) GenerateCallerToken(caller domain.Principal, expiresIn time.Duration) (string, error) {
	if caller.IsNil() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "caller is required")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  []string{s.audience},
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	if _, err := domain.ParsePrincipal(claims.Subject); err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token subject")
	}
	return claims, nil
}

// CallerValidator exposes s through the auth middleware's validator port.
func (s *JWTService) CallerValidator() authmw.JWTValidator {
	return callerValidator{service: s}
}

type callerValidator struct {
	service *JWTService
}

func (v callerValidator) ValidateToken(raw string) (*authmw.JWTClaims, error) {
	claims, err := v.service.ValidateToken(raw)
	if err != nil {
		return nil, err
	}
	return &authmw.JWTClaims{Caller: claims.Subject, JTI: claims.ID}, nil
}

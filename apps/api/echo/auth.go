package echoapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/employee"
)

var (
	// appJWTConfig is the default JWT auth middleware config. The signing key
	// and expiration delta are filled in by initAuth.
	appJWTConfig = middleware.JWTConfig{
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "employeeToken",
		Claims:        new(Claims),
	}
	jwtIssuer          string
	jwtExpirationDelta time.Duration
)

func initAuth(conf *core.Config) {
	appJWTConfig.SigningKey = []byte(conf.SecretKey)
	jwtIssuer = conf.AppName
	jwtExpirationDelta = conf.Server.JWTExpirationDelta
}

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// employee rebuilds just enough of the authenticated employee to evaluate
// permissions without a database round trip.
func (c Claims) employee() employee.Employee {
	perms := make([]employee.Permission, 0, len(c.Permissions))
	for _, p := range c.Permissions {
		perms = append(perms, employee.Permission(p))
	}
	return employee.Employee{
		ID:          c.Subject,
		Name:        c.Name,
		Email:       c.Email,
		Role:        employee.Role(c.Role),
		Permissions: perms,
	}
}

func GetEmployeeClaims(emp employee.Employee) *Claims {
	now := time.Now()
	perms := make([]string, 0, len(emp.Permissions))
	for _, p := range emp.Permissions {
		perms = append(perms, string(p))
	}
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    jwtIssuer,
			Subject:   emp.ID,
			ExpiresAt: now.Add(jwtExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:        emp.Name,
		Email:       emp.Email,
		Role:        string(emp.Role),
		Permissions: perms,
	}
}

func authenticate(ctx context.Context, email, pwd string, svc *employee.Service) (*Claims, error) {
	emp, err := svc.GetByEmail(ctx, email)
	if err != nil {
		if core.IsNotFound(err) {
			return nil, errAuthenticationFailed
		}
		return nil, errors.Wrap(err, "finding employee by email")
	}
	if err = emp.CheckPassword(pwd); err != nil {
		return nil, errAuthenticationFailed
	}
	if emp.Status == employee.StatusInactive {
		return nil, errAccountDeactivated
	}
	return GetEmployeeClaims(emp), nil
}

// GenerateToken generates a signed JWT token string representing the employee Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// Auth handlers

type authApi struct {
	svc *employee.Service
}

func registerAuthAPI(g *echo.Group, svc *employee.Service) {
	api := authApi{svc: svc}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := authenticate(ctx.Request().Context(), data.Email, data.Password, api.svc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)

func (lr *LoginRequest) Validate() error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return core.Validate.Struct(lr)
}

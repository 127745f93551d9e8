package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-disciplinary-api/internal/dto"
	"github.com/noah-isme/hr-disciplinary-api/internal/models"
	"github.com/noah-isme/hr-disciplinary-api/internal/service"
	"github.com/noah-isme/hr-disciplinary-api/pkg/config"
)

// issue-token prints a bearer token signed with the configured JWT secret.
// Real deployments receive tokens from the identity host.
func main() {
	userID := flag.String("user", "", "user id (required)")
	employeeID := flag.String("employee", "", "employee id the user maps to")
	role := flag.String("role", string(models.RoleEmployee), "ADMIN, HR_MANAGER, HR_OFFICER, EXECUTIVE or EMPLOYEE")
	email := flag.String("email", "", "email address")
	name := flag.String("name", "", "full name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Env == config.EnvProduction {
		log.Fatal("refusing to issue development tokens in production")
	}

	auth := service.NewAuthService(validator.New(), zap.NewNop(), service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		Expiry: cfg.JWT.Expiration,
	})
	token, expiresAt, err := auth.IssueToken(models.IssueTokenRequest{
		UserID:     *userID,
		EmployeeID: *employeeID,
		Role:       models.UserRole(strings.ToUpper(*role)),
		Email:      *email,
		FullName:   *name,
	})
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.IssueTokenResponse{Token: token, ExpiresAt: expiresAt.Format(time.RFC3339)}); err != nil {
		log.Fatalf("failed to write token: %v", err)
	}
}

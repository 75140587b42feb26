package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type Claims struct {
	TenantID    string   `json:"tenant_id,omitempty"`
	Email       string   `json:"email,omitempty"`
	Name        string   `json:"name,omitempty"`
	CompanyName string   `json:"company_name,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Define command line flags
	userID := flag.String("user", "", "User ID for the token (sub claim)")
	tenantID := flag.String("tenant", "", "Tenant ID for the token (empty for a not-yet-provisioned user)")
	email := flag.String("email", "", "Email address for the token")
	name := flag.String("name", "", "Display name for the token")
	companyName := flag.String("company", "", "Company name hint used during provisioning")
	roles := flag.String("roles", "", "Comma-separated list of roles")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}

	// Parse roles
	rolesList := []string{}
	if *roles != "" {
		rolesList = strings.Split(*roles, ",")
	}

	// Create claims
	claims := &Claims{
		TenantID:    *tenantID,
		Email:       *email,
		Name:        *name,
		CompanyName: *companyName,
		Roles:       rolesList,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   *userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(*expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Get JWT secret from environment
	jwtSecret := []byte(getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key"))

	// Sign the token
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/tablekeeper/internal/config"
	"github.com/franciscosanchezn/tablekeeper/internal/database"
	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	role := flag.String("role", models.RoleOwner, "Role of the user the client acts for (owner or staff)")
	password := flag.String("password", "dev-password-123", "Password for the user if it has to be created")
	flag.Parse()

	if !models.ValidRole(*role) {
		log.Fatalf("Unknown role %q", *role)
	}

	_ = godotenv.Load()
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(database.FromConfig(conf))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	ctx := context.Background()
	users := services.NewUserService(db)
	clients := services.NewClientService(db)

	user := getUserForRole(ctx, users, *role, *password)

	name := fmt.Sprintf("Development %s Client", *role)
	existing, err := clients.GetClientsByUserID(ctx, user.ID)
	if err != nil {
		log.Fatal("Failed to list clients:", err)
	}
	for _, c := range existing {
		if c.Name == name {
			fmt.Printf("Development client already exists for role '%s'!\n", *role)
			fmt.Printf("Client ID: %s\n", c.ID)
			fmt.Println("The secret is only shown at creation. Delete the client to get a new one.")
			return
		}
	}

	client := &models.OAuthClient{
		Name:   name,
		Domain: "http://localhost",
		UserID: user.ID,
		Scopes: "read write",
	}
	secret, err := clients.CreateClient(ctx, client)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	fmt.Printf("Development OAuth client created for role '%s'\n", *role)
	fmt.Printf("Client ID: %s\n", client.ID)
	fmt.Printf("Client Secret: %s\n", secret)
	fmt.Printf("User ID: %s\n", user.ID)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:%d/api/oauth/token \\\n", conf.RestaurantPort)
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", client.ID)
	fmt.Printf("  -d 'client_secret=%s'\n", secret)
}

// getUserForRole gets or creates a user with the specified role
func getUserForRole(ctx context.Context, users services.UserService, role, password string) *models.User {
	email := fmt.Sprintf("%s@tablekeeper.dev", role)

	user, err := users.GetUserByEmail(ctx, email)
	if err == nil {
		fmt.Printf("Found existing user: %s (ID: %s, Role: %s)\n", user.Email, user.ID, user.Role)
		return user
	}
	if !errors.Is(err, services.ErrNotFound) {
		log.Fatal("Failed to look up user:", err)
	}

	user = &models.User{
		Email:    email,
		Name:     fmt.Sprintf("%s User", role),
		Password: password,
		Role:     role,
	}
	if err := users.CreateUser(ctx, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("Created new user: %s (ID: %s, Role: %s)\n", user.Email, user.ID, user.Role)
	return user
}

package main

import (
	"context"
	"fmt"

	"easyrent/internal/account"
	"easyrent/internal/config"
	"easyrent/pkg/domain"
	"easyrent/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that issues an access token for
// a user using the configured private key. Useful for admin scripts.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a user id", zap.Error(err))
			}
			userRole := domain.UserRole(role)
			if userRole != domain.UserRoleUser && userRole != domain.UserRoleAdmin {
				logger.Fatal(ctx, "unknown role", zap.String("role", role))
			}

			issuer, err := account.NewIssuer(cfg.JWT.PrivateKey, ttl)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}
			signed, err := issuer.Issue(domain.UserID(userID), userRole)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "User ID")
	cmd.Flags().String("role", string(domain.UserRoleUser), "USER or ADMIN")
	cmd.Flags().Duration("ttl", cfg.JWT.TTL, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

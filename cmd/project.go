package main

import (
	"context"
	"fmt"
	"scanguard/internal/config"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/storage"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// projectCommand groups the commands that seed projects and owner tiers.
func projectCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manages projects and their owners' tiers",
	}

	cmd.AddCommand(projectCreateCommand(cfg))

	return cmd
}

func projectCreateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a project for an owner and sets the owner's tier",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			owner, _ := cmd.Flags().GetString("owner")
			name, _ := cmd.Flags().GetString("name")
			tier, _ := cmd.Flags().GetString("tier")
			target, _ := cmd.Flags().GetString("target")

			ownerID, err := uuid.Parse(owner)
			if err != nil {
				logger.Fatal(ctx, "owner must be a user UUID", zap.String("owner", owner), zap.Error(err))
			}
			targetURL, err := domain.NormalizeTargetURL(target)
			if err != nil {
				logger.Fatal(ctx, "invalid target", zap.String("target", target), zap.Error(err))
			}
			if !domain.Tier(tier).Valid() {
				logger.Fatal(ctx, "unknown tier", zap.String("tier", tier))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			var project *domain.Project
			err = strg.WithTx(ctx, storage.ReadCommitted, func(tx storage.AllStorage) error {
				if err := tx.SetUserTier(ctx, domain.UserID(ownerID), domain.Tier(tier)); err != nil {
					return err //nolint: wrapcheck
				}

				project, err = tx.StoreProject(ctx, domain.Project{
					OwnerID:   domain.UserID(ownerID),
					Name:      name,
					TargetURL: targetURL,
				})

				return err //nolint: wrapcheck
			})
			if err != nil {
				logger.Fatal(ctx, "could not create project", zap.Error(err))
			}

			fmt.Println(project.ID.String()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("owner", "", "Owner user ID")
	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("target", "", "Target URL the project's runs scan")
	cmd.Flags().String("tier", string(domain.TierFree), "Owner tier (free, pro, enterprise)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

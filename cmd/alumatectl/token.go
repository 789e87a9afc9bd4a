package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geniusdynamics/alumate-sub010/core/config"
	"github.com/geniusdynamics/alumate-sub010/internal/auth"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

func tokenCmd() *cobra.Command {
	var (
		userID int64
		roles  string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user is required")
			}
			cfg, err := config.Load(config.ServiceTypeCLI)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			tm, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Auth.TokenTTL
			}

			actor := model.Actor{ID: userID, Roles: model.ParseRoles(strings.Split(roles, ","))}
			token, err := tm.Issue(actor, ttl)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(map[string]any{
					"token":      token,
					"user_id":    userID,
					"roles":      actor.Roles.Names(),
					"expires_in": int64(ttl.Seconds()),
				})
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user id to issue the token for")
	cmd.Flags().StringVar(&roles, "roles", "member", "comma separated roles (member, moderator, admin)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_TTL)")
	return cmd
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/nodebook-local/auth"
)

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint and check device tokens for the HTTP API",
	}

	var ttl time.Duration
	create := &cobra.Command{
		Use:   "create <device>",
		Short: "Mint a device token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.issuer().CreateToken(args[0], ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	create.Flags().DurationVar(&ttl, "ttl", auth.DefaultTTL, "how long the token stays valid")

	verify := &cobra.Command{
		Use:   "verify <token>",
		Short: "Check a device token and print the device it was minted for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			device, err := a.issuer().VerifyToken(args[0])
			if err != nil {
				return fmt.Errorf("token rejected: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), device)
			return nil
		},
	}

	cmd.AddCommand(create, verify)
	return cmd
}

func (a *app) issuer() auth.Issuer {
	return auth.Issuer{
		Secret:   a.env.JWTSecretKey,
		Issuer:   a.env.JWTIssuer,
		Audience: a.env.JWTAudience,
	}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAuthCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the explorer API key in the system keyring",
	}
	cmd.AddCommand(newAuthSetCommand(root), newAuthDeleteCommand(root))
	return cmd
}

func newAuthSetCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set [api-key]",
		Short: "Store the API key; reads it from stdin when no argument is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer a.close()

			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read API key from stdin: %w", err)
				}
				key = line
			}
			key = strings.TrimSpace(key)
			if key == "" {
				return errors.New("API key must not be empty")
			}

			creds := a.cfg.Credentials
			if err := a.secrets.Set(creds.KeyringService, creds.KeyringUser, key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API key stored in keyring (%s/%s)\n", creds.KeyringService, creds.KeyringUser)
			return nil
		},
	}
}

func newAuthDeleteCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer a.close()

			creds := a.cfg.Credentials
			if err := a.secrets.Delete(creds.KeyringService, creds.KeyringUser); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed from keyring")
			return nil
		},
	}
}

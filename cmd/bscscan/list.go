package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"bscscan_node/internal/domain/entity"
	operationdefinition "bscscan_node/internal/infrastructure/operation/definition"
	"bscscan_node/internal/pkg/outfmt"

	"github.com/spf13/cobra"
)

func newOperationsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops := operationdefinition.MustDefaultRegistry().All()
			if asJSON {
				return outfmt.Write(cmd.OutOrStdout(), ops, "")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "OPERATION\tMODULE\tACTION\tFIELDS\tALIASES")
			for _, op := range ops {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					op.ID, op.Module, op.Action, joinFields(op.RequiredFields()), strings.Join(op.Aliases, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newNetworksCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer a.close()

			networks := a.networks.Networks()
			if asJSON {
				return outfmt.Write(cmd.OutOrStdout(), networks, "")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NETWORK\tNAME\tBASE URL\tDEFAULT")
			for _, n := range networks {
				def := ""
				if n.ID == a.cfg.Explorer.DefaultNetwork {
					def = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.Name, n.BaseURL, def)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func joinFields(fields []entity.FieldName) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

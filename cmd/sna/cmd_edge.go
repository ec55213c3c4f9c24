package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newEdgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Manage edges",
	}
	cmd.AddCommand(edgeCreateCmd())
	cmd.AddCommand(edgeDeleteCmd())
	cmd.AddCommand(edgeListCmd())
	return cmd
}

func edgeCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <source> <target>",
		Short: "Connect two nodes",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			edge, err := apiClient.Edges.Create(context.Background(), parseNodeID(args[0]), parseNodeID(args[1]))
			if err != nil {
				fatal("create edge", err)
			}
			output(edge, fmt.Sprintf("%d-%d", edge.Source, edge.Target))
		},
	}
}

func edgeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <source> <target>",
		Short: "Delete an edge",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Edges.Delete(context.Background(), parseNodeID(args[0]), parseNodeID(args[1])); err != nil {
				fatal("delete edge", err)
			}
			fmt.Println("deleted")
		},
	}
}

func edgeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all edges",
		Run: func(cmd *cobra.Command, args []string) {
			edges, err := apiClient.Edges.List(context.Background())
			if err != nil {
				fatal("list edges", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(edges))
				for _, e := range edges {
					rows = append(rows, []string{
						strconv.Itoa(e.Source),
						strconv.Itoa(e.Target),
						fmt.Sprintf("%.4f", e.Weight),
					})
				}
				formatTable([]string{"SOURCE", "TARGET", "WEIGHT"}, rows)
				return
			}
			output(edges, strconv.Itoa(len(edges)))
		},
	}
}

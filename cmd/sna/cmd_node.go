package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/EmircanDemirTR/social-network-analyzer/client"
)

func newNodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage nodes",
	}
	cmd.AddCommand(nodeCreateCmd())
	cmd.AddCommand(nodeGetCmd())
	cmd.AddCommand(nodeUpdateCmd())
	cmd.AddCommand(nodeDeleteCmd())
	cmd.AddCommand(nodeListCmd())
	return cmd
}

func parseNodeID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		fatal("parse id", fmt.Errorf("%q is not a positive integer", arg))
	}
	return id
}

func nodeCreateCmd() *cobra.Command {
	var name string
	var x, y, activity, interaction float64
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a node",
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateNodeRequest{Name: name}
			if cmd.Flags().Changed("x") {
				req.X = &x
			}
			if cmd.Flags().Changed("y") {
				req.Y = &y
			}
			if cmd.Flags().Changed("activity") {
				req.Activity = &activity
			}
			if cmd.Flags().Changed("interaction") {
				req.Interaction = &interaction
			}
			node, err := apiClient.Nodes.Create(context.Background(), req)
			if err != nil {
				fatal("create node", err)
			}
			output(node, strconv.Itoa(node.ID))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Node name (default: User_<id>)")
	cmd.Flags().Float64Var(&x, "x", 0, "X position (default: random)")
	cmd.Flags().Float64Var(&y, "y", 0, "Y position (default: random)")
	cmd.Flags().Float64Var(&activity, "activity", 0, "Activity score (default: random)")
	cmd.Flags().Float64Var(&interaction, "interaction", 0, "Interaction score (default: random)")
	return cmd
}

func nodeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a node by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			node, err := apiClient.Nodes.Get(context.Background(), parseNodeID(args[0]))
			if err != nil {
				fatal("get node", err)
			}
			output(node, strconv.Itoa(node.ID))
		},
	}
}

func nodeUpdateCmd() *cobra.Command {
	var name string
	var x, y, activity, interaction float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a node",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateNodeRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("x") {
				req.X = &x
			}
			if cmd.Flags().Changed("y") {
				req.Y = &y
			}
			if cmd.Flags().Changed("activity") {
				req.Activity = &activity
			}
			if cmd.Flags().Changed("interaction") {
				req.Interaction = &interaction
			}
			node, err := apiClient.Nodes.Update(context.Background(), parseNodeID(args[0]), req)
			if err != nil {
				fatal("update node", err)
			}
			output(node, strconv.Itoa(node.ID))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Node name")
	cmd.Flags().Float64Var(&x, "x", 0, "X position")
	cmd.Flags().Float64Var(&y, "y", 0, "Y position")
	cmd.Flags().Float64Var(&activity, "activity", 0, "Activity score")
	cmd.Flags().Float64Var(&interaction, "interaction", 0, "Interaction score")
	return cmd
}

func nodeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a node",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Nodes.Delete(context.Background(), parseNodeID(args[0])); err != nil {
				fatal("delete node", err)
			}
			fmt.Println("deleted")
		},
	}
}

func nodeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all nodes",
		Run: func(cmd *cobra.Command, args []string) {
			nodes, err := apiClient.Nodes.List(context.Background())
			if err != nil {
				fatal("list nodes", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(nodes))
				for _, n := range nodes {
					rows = append(rows, []string{
						strconv.Itoa(n.ID),
						n.Name,
						fmt.Sprintf("%.2f", n.Activity),
						fmt.Sprintf("%.2f", n.Interaction),
						strconv.Itoa(n.ConnectionCount),
					})
				}
				formatTable([]string{"ID", "NAME", "ACTIVITY", "INTERACTION", "CONNECTIONS"}, rows)
				return
			}
			output(nodes, strconv.Itoa(len(nodes)))
		},
	}
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Whole-graph queries and mutations",
	}
	cmd.AddCommand(graphStatsCmd())
	cmd.AddCommand(graphNeighborsCmd())
	cmd.AddCommand(graphSimilarityCmd())
	cmd.AddCommand(graphRandomCmd())
	cmd.AddCommand(graphClearCmd())
	return cmd
}

func graphStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show graph statistics",
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := apiClient.Stats(context.Background())
			if err != nil {
				fatal("get stats", err)
			}
			output(stats, fmt.Sprintf("%d/%d", stats.NodeCount, stats.EdgeCount))
		},
	}
}

func graphNeighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <id>",
		Short: "List a node's neighbors",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			neighbors, err := apiClient.Graph.Neighbors(context.Background(), parseNodeID(args[0]))
			if err != nil {
				fatal("get neighbors", err)
			}
			output(neighbors, strconv.Itoa(len(neighbors)))
		},
	}
}

func graphSimilarityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <a> <b>",
		Short: "Compute attribute similarity between two nodes",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Graph.Similarity(context.Background(), parseNodeID(args[0]), parseNodeID(args[1]))
			if err != nil {
				fatal("compute similarity", err)
			}
			output(result, fmt.Sprintf("%.2f", result.Similarity))
		},
	}
}

func graphRandomCmd() *cobra.Command {
	var nodes int
	var probability float64
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Replace the graph with a random demo graph",
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := apiClient.Graph.GenerateRandom(context.Background(), nodes, probability)
			if err != nil {
				fatal("generate random graph", err)
			}
			output(stats, fmt.Sprintf("%d/%d", stats.NodeCount, stats.EdgeCount))
		},
	}
	cmd.Flags().IntVar(&nodes, "nodes", 20, "Number of nodes")
	cmd.Flags().Float64Var(&probability, "probability", 0.2, "Edge probability per node pair")
	return cmd
}

func graphClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every node and edge",
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Graph.Clear(context.Background()); err != nil {
				fatal("clear graph", err)
			}
			fmt.Println("cleared")
		},
	}
}

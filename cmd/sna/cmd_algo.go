package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EmircanDemirTR/social-network-analyzer/client"
)

func newAlgoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algo",
		Short: "Run graph algorithms",
	}
	cmd.AddCommand(algoListCmd())
	cmd.AddCommand(algoRunCmd())
	return cmd
}

func algoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			names, err := apiClient.Algorithms.List(context.Background())
			if err != nil {
				fatal("list algorithms", err)
			}
			output(names, strings.Join(names, ","))
		},
	}
}

func algoRunCmd() *cobra.Command {
	var start, target, topK int
	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Run an algorithm (bfs, dfs, dijkstra, astar, components, degree-centrality, welsh-powell)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.RunAlgorithmRequest{Algorithm: args[0], TopK: topK}
			if cmd.Flags().Changed("start") {
				req.StartID = &start
			}
			if cmd.Flags().Changed("target") {
				req.TargetID = &target
			}
			result, err := apiClient.Algorithms.Run(context.Background(), req)
			if err != nil {
				fatal("run algorithm", err)
			}
			if !result.Success {
				fmt.Println(result.Message)
				return
			}
			output(result, strconv.FormatBool(result.Success))
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "Start node id (traversal and path algorithms)")
	cmd.Flags().IntVar(&target, "target", 0, "Target node id (path algorithms)")
	cmd.Flags().IntVar(&topK, "top-k", 0, "Limit centrality ranking to the top K nodes")
	return cmd
}

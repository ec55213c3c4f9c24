package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/EmircanDemirTR/social-network-analyzer/client"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Control the force-directed layout solver",
	}
	cmd.AddCommand(layoutStartCmd())
	cmd.AddCommand(layoutStopCmd())
	cmd.AddCommand(layoutResetCmd())
	cmd.AddCommand(layoutReheatCmd())
	cmd.AddCommand(layoutStepCmd())
	cmd.AddCommand(layoutParamsCmd())
	return cmd
}

func layoutStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a background layout run",
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Layout.Start(context.Background()); err != nil {
				fatal("start layout", err)
			}
			fmt.Println("running")
		},
	}
}

func layoutStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the active layout run",
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Layout.Stop(context.Background()); err != nil {
				fatal("stop layout", err)
			}
			fmt.Println("stopped")
		},
	}
}

func layoutResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Zero velocities and restore the annealing temperature",
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Layout.Reset(context.Background()); err != nil {
				fatal("reset layout", err)
			}
			fmt.Println("reset")
		},
	}
}

func layoutReheatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reheat",
		Short: "Raise the temperature so a settled layout moves again",
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Layout.Reheat(context.Background()); err != nil {
				fatal("reheat layout", err)
			}
			fmt.Println("reheated")
		},
	}
}

func layoutStepCmd() *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance the simulation synchronously",
		Run: func(cmd *cobra.Command, args []string) {
			steps, err := apiClient.Layout.Step(context.Background(), iterations)
			if err != nil {
				fatal("step layout", err)
			}
			output(map[string]int{"steps": steps}, strconv.Itoa(steps))
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Step count (0 = configured budget)")
	return cmd
}

func layoutParamsCmd() *cobra.Command {
	var repulsion, attraction, damping float64
	var iterations int
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show or set solver parameters",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if cmd.Flags().NFlag() == 0 {
				params, err := apiClient.Layout.Params(ctx)
				if err != nil {
					fatal("get layout params", err)
				}
				output(params, strconv.FormatBool(params.Running))
				return
			}

			cfg := &client.LayoutConfig{
				Repulsion:  repulsion,
				Attraction: attraction,
				Damping:    damping,
				Iterations: iterations,
			}
			params, err := apiClient.Layout.SetParams(ctx, cfg)
			if err != nil {
				fatal("set layout params", err)
			}
			output(params, "ok")
		},
	}
	cmd.Flags().Float64Var(&repulsion, "repulsion", 0, "Repulsion constant (0 = unchanged)")
	cmd.Flags().Float64Var(&attraction, "attraction", 0, "Attraction constant (0 = unchanged)")
	cmd.Flags().Float64Var(&damping, "damping", 0, "Velocity damping in (0,1) (0 = unchanged)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Run step budget (0 = unchanged)")
	return cmd
}

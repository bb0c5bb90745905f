package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/PressureTank/idiomatic/backend/arith"
	"github.com/PressureTank/idiomatic/backend/idiom"
	"github.com/PressureTank/idiomatic/backend/weather"
)

func StyleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Print the style guide walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return idiom.Tour(cmd.OutOrStdout())
		},
	}
}

func WeatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weather TEMP",
		Short: "Classify a temperature as hot or cold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			temp, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), weather.Classify(temp))
			return nil
		},
	}
}

func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Print A + B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(arith.Add(a, b)))
			return nil
		},
	}
}

func DivideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide A B",
		Short: "Print A / B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args)
			if err != nil {
				return err
			}
			q, err := arith.Divide(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(q))
			return nil
		},
	}
}

func parsePair(args []string) (float64, float64, error) {
	a, err := parseNumber(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseNumber(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

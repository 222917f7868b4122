package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/blockgen"
	"github.com/deepnoodle-ai/blockgen/internal/sink"
)

type generateResult struct {
	Name      string   `json:"name"`
	Helpers   []string `json:"helpers"`
	Variables []string `json:"variables"`
	Code      string   `json:"code"`
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [file]",
		Aliases: []string{"gen", "g"},
		Short:   "Generate a Dart program from a block document",
		Args:    cobra.MaximumNArgs(1),
		RunE:    generateHandler,
	}
	addInputFlags(cmd)
	addGenerateFlags(cmd)
	return cmd
}

func generateHandler(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format, err := getOutputFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	name, data, err := getInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := blockgen.GenerateSource(ctx, data, getOptions(cmd, name)...)
	if err != nil {
		return err
	}

	s, toStdout, err := openSink(cmd, viper.GetString("out"))
	if err != nil {
		return err
	}
	fileName := sink.OutputName(name)
	payload := []byte(out.String())
	if format == "json" {
		result := generateResult{
			Name:      fileName,
			Helpers:   []string{},
			Variables: append([]string{}, out.Variables...),
			Code:      out.String(),
		}
		for _, h := range out.Definitions {
			result.Helpers = append(result.Helpers, h.Name)
		}
		if payload, err = getOutputJSON(result, toStdout); err != nil {
			return err
		}
		payload = append(payload, '\n')
		fileName = strings.TrimSuffix(fileName, ".dart") + ".json"
	}
	if err := s.Write(ctx, fileName, payload); err != nil {
		return err
	}
	if !toStdout {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s to %s\n", green("wrote"), fileName, viper.GetString("out"))
	}
	return nil
}

// openSink returns the sink for target. Standard output goes to the
// command's writer so it can be captured.
func openSink(cmd *cobra.Command, target string) (sink.Sink, bool, error) {
	if target == "" || target == "-" {
		return sink.NewWriter(cmd.OutOrStdout()), true, nil
	}
	s, err := sink.Open(cmd.Context(), target)
	if err != nil {
		return nil, false, err
	}
	return s, false, nil
}

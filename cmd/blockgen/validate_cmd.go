package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/blockgen"
	"github.com/deepnoodle-ai/blockgen/errors"
)

type validateIssue struct {
	Code        string   `json:"code,omitempty"`
	Message     string   `json:"message"`
	Block       string   `json:"block,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	Field       string   `json:"field,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type validateResult struct {
	Name   string          `json:"name"`
	Valid  bool            `json:"valid"`
	Errors []validateIssue `json:"errors"`
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a block document without generating code",
		Long:  "Check a block document and report every problem that would make generation fail.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  validateHandler,
	}
	addInputFlags(cmd)
	return cmd
}

func validateHandler(cmd *cobra.Command, args []string) error {
	format, err := getOutputFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	name, data, err := getInput(cmd, args)
	if err != nil {
		return err
	}
	verr := blockgen.ValidateSource(data, getOptions(cmd, name)...)

	if format == "json" {
		result := validateResult{Name: name, Valid: verr == nil, Errors: issues(verr)}
		output, err := getOutputJSON(result, true)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		if verr != nil {
			return errSilent
		}
		return nil
	}
	if verr != nil {
		return verr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("ok"), name)
	return nil
}

func issues(err error) []validateIssue {
	list := []validateIssue{}
	for _, e := range errors.Flatten(err) {
		var ge *errors.GenerateError
		if !errors.As(e, &ge) {
			list = append(list, validateIssue{Message: e.Error()})
			continue
		}
		issue := validateIssue{
			Code:    string(ge.Code),
			Message: ge.Message,
			Block:   ge.Location.BlockID,
			Kind:    ge.Location.Kind,
			Field:   ge.Location.Field,
		}
		for _, s := range ge.Suggestions {
			issue.Suggestions = append(issue.Suggestions, s.Value)
		}
		list = append(list, issue)
	}
	return list
}

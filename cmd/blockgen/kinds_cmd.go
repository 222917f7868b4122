package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/blockgen"
	"github.com/deepnoodle-ai/blockgen/block"
)

type kindInfo struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Statement bool   `json:"statement"`
}

func newKindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds [type]",
		Short: "List the supported block types, or document one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  kindsHandler,
	}
	cmd.Flags().String("category", "", "only list block types in this toolbox category")
	return cmd
}

func kindsHandler(cmd *cobra.Command, args []string) error {
	format, err := getOutputFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(args) > 0 {
		return kindDocHandler(w, args[0], format)
	}

	category := viper.GetString("category")
	var kinds []kindInfo
	for _, k := range block.Kinds() {
		if category != "" && k.Category() != category {
			continue
		}
		kinds = append(kinds, kindInfo{Name: k.String(), Category: k.Category(), Statement: k.IsStatement()})
	}
	if len(kinds) == 0 {
		return fmt.Errorf("unknown category: %s", category)
	}

	if format == "json" {
		output, err := getOutputJSON(kinds, true)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
		return nil
	}
	for _, k := range kinds {
		shape := "value"
		if k.Statement {
			shape = "statement"
		}
		fmt.Fprintf(w, "%-20s %-10s %s\n", k.Name, k.Category, shape)
	}
	return nil
}

func kindDocHandler(w io.Writer, name, format string) error {
	doc, ok := blockgen.LookupKindDoc(name)
	if !ok {
		// The topic lookup carries the "did you mean" suggestions.
		data, _ := blockgen.Docs(blockgen.DocsTopic(name)).Data().(map[string]any)
		if suggestions, ok := data["suggestions"].([]string); ok {
			return fmt.Errorf("unknown block type: %s (did you mean %s?)", name, strings.Join(suggestions, ", "))
		}
		return fmt.Errorf("unknown block type: %s", name)
	}
	if format == "json" {
		output, err := getOutputJSON(doc, true)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
		return nil
	}

	fmt.Fprintf(w, "%s (%s %s)\n\n", bold(doc.Name), doc.Category, doc.Shape)
	fmt.Fprintf(w, "  %s\n", doc.Doc)
	if len(doc.Fields) > 0 {
		fmt.Fprintf(w, "\n%s\n", bold("Fields"))
		for _, f := range doc.Fields {
			if len(f.Values) > 0 {
				fmt.Fprintf(w, "  %-8s %s\n", f.Name, strings.Join(f.Values, " | "))
			} else {
				fmt.Fprintf(w, "  %s\n", f.Name)
			}
		}
	}
	if len(doc.Sockets) > 0 {
		fmt.Fprintf(w, "\n%s\n", bold("Inputs"))
		for _, s := range doc.Sockets {
			fmt.Fprintf(w, "  %-8s default %s\n", s.Name, s.Default)
		}
	}
	fmt.Fprintf(w, "\n%s\n  %s\n", bold("Example"), doc.Example)
	fmt.Fprintf(w, "\n%s\n  %s", bold("Generates"), doc.Emits)
	return nil
}

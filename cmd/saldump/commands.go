package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	saldata "github.com/reoring/saldata"
	"github.com/reoring/saldata/source"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List every attribute with its kind, shape and summary flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attr, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tKIND\tDETAIL\tSUMMARY")
			err = saldata.Walk(attr, func(path string, attr saldata.Attribute) error {
				_, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", path, attr.Kind(), detail(attr), attr.IsSummary())
				return err
			})
			if err != nil {
				return err
			}
			return tw.Flush()
		},
	}
}

// detail describes an attribute in one cell: the value of a scalar, element
// kind and shape of an array, entry count of a dictionary.
func detail(attr saldata.Attribute) string {
	switch v := attr.(type) {
	case saldata.ArrayValue:
		elem := "?"
		if v.ElementKind() != saldata.KindNull {
			elem = v.ElementKind().String()
		}
		dims := make([]string, len(v.Shape()))
		for i, d := range v.Shape() {
			dims[i] = fmt.Sprint(d)
		}
		return fmt.Sprintf("%s[%s]", elem, strings.Join(dims, ","))
	case *saldata.Dictionary:
		return fmt.Sprintf("%d entries", v.Len())
	case *saldata.Null:
		return "-"
	default:
		m := attr.EncodeSummary()
		return fmt.Sprint(m["value"])
	}
}

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE",
		Short: "Print the header-only view of every attribute as JSON keyed by path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attr, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			out := map[string]any{}
			err = saldata.Walk(attr, func(path string, attr saldata.Attribute) error {
				out[path] = attr.EncodeSummary()
				return nil
			})
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var (
		to      string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "convert FILE --to FORMAT",
		Short: "Decode, validate and re-encode a tree in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := source.ParseFormat(to)
			if err != nil {
				return err
			}
			attr, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := source.Encode(f, attr, "  ")
			if err != nil {
				a.logIssues(err)
				return err
			}
			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(outPath, b, 0o644); err != nil {
				return err
			}
			a.log.Infow("converted", "from", args[0], "to", outPath, "format", f, "bytes", len(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "output format: json, yaml or cbor")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

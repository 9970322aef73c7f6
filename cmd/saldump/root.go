package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	saldata "github.com/reoring/saldata"
	"github.com/reoring/saldata/source"
)

// app holds the global flags and the logger shared by all subcommands.
type app struct {
	format   string
	maxDepth int
	verbose  bool
	logJSON  bool

	log *zap.SugaredLogger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{log: zap.NewNop().Sugar()}
	root := &cobra.Command{
		Use:   "saldump",
		Short: "Inspect and convert typed attribute trees",
		Long: `saldump decodes attribute trees (null, scalars, N-dimensional arrays and
dictionaries) from JSON, YAML or CBOR and validates them.

Examples:
  saldump inspect shot.json            # one line per attribute
  saldump summary shot.yaml            # header-only view of every attribute
  saldump convert shot.json --to cbor -o shot.cbor`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger(errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.format, "format", "", "input format: json, yaml or cbor (default: from file extension)")
	pf.IntVar(&a.maxDepth, "max-depth", saldata.DefaultMaxDepth, "maximum attribute nesting depth (negative disables the limit)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	pf.BoolVar(&a.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(a.inspectCmd(), a.summaryCmd(), a.convertCmd())
	return root
}

func (a *app) initLogger(w io.Writer) error {
	level := zap.InfoLevel
	if a.verbose {
		level = zap.DebugLevel
	}
	var enc zapcore.Encoder
	if a.logJSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	a.log = zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)).Sugar()
	return nil
}

// load reads and decodes the attribute tree stored at path ("-" for stdin).
func (a *app) load(cmd *cobra.Command, path string) (saldata.Attribute, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	f := source.FormatFromPath(path)
	if a.format != "" {
		if f, err = source.ParseFormat(a.format); err != nil {
			return nil, err
		}
	}
	a.log.Debugw("decoding", "path", path, "format", f, "bytes", len(data), "max_depth", a.maxDepth)

	attr, err := source.Decode(f, data, saldata.DecodeOpt{MaxDepth: a.maxDepth})
	if err != nil {
		a.logIssues(err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debugw("decoded", "path", path, "kind", attr.Kind(), "summary", attr.IsSummary())
	return attr, nil
}

func (a *app) logIssues(err error) {
	iss, ok := saldata.AsIssues(err)
	if !ok {
		return
	}
	for _, it := range iss {
		a.log.Warnw(it.Message, "path", it.Path, "code", it.Code)
		if frag := it.Fragment(); frag != "" {
			a.log.Debugw("offending node", "path", it.Path, "node", frag)
		}
		if it.Cause != nil {
			a.log.Debugw("cause", "path", it.Path, "error", it.Cause)
		}
	}
}

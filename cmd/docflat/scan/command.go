package scan

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/brimdata/docflat/cmd/docflat/root"
	"github.com/brimdata/docflat/column"
	"github.com/brimdata/docflat/pkg/charm"
	"github.com/brimdata/docflat/runtime/jsoncol"
	"github.com/brimdata/docflat/segment"
	"github.com/brimdata/docflat/vector"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var spec = &charm.Spec{
	Name:  "scan",
	Usage: "scan [-config file] [-path path:type ...] [options] file",
	Short: "flatten document paths of an NDJSON file at read time",
	Long: `
The scan command loads a file of newline-delimited JSON documents ("-" for
standard input) into a raw document column, then scans the column with a
runtime-flattening reader that exposes each requested path as a typed
flat field.  Each row is written to standard output as a JSON object
mapping path to value, or null for a null document.

Paths are given with -path, which may be repeated, as path:type, e.g.,
-path '$.user.id:int64' -path 'tags[0]:string'.  Types are bool, int8,
int16, int32, int64, float32, float64, string, and json, along with the
SQL aliases boolean, tinyint, smallint, int, bigint, float, double, and
varchar.  A value whose JSON kind does not fit the type is null.

The -config option names a YAML file with the keys column, batch,
nullable, fields (a list of path and type), and segment (page_rows and
cache_pages).  Command-line options given after -config override the file.

With -metrics, the path hit counters and flattening time are logged when
the scan completes.
`,
	HiddenFlags: "pagerows",
	New:         New,
}

func init() {
	root.Docflat.Add(spec)
}

type Command struct {
	*root.Command
	conf    Config
	metrics bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command), conf: DefaultConfig()}
	f.Func("config", "path of scan YAML config file", func(s string) error {
		return LoadConfig(s, &c.conf)
	})
	f.Func("path", "flat field as path:type (can be specified multiple times)", func(s string) error {
		field, err := ParseField(s)
		if err != nil {
			return err
		}
		c.conf.Fields = append(c.conf.Fields, field)
		return nil
	})
	f.Func("batch", "rows per batch (default 1024)", func(s string) error {
		return flagUint32(s, &c.conf.Batch)
	})
	f.Func("pagerows", "rows per segment page (default 1024)", func(s string) error {
		return flagUint32(s, &c.conf.Segment.PageRows)
	})
	f.BoolFunc("nullable", "store a null-presence vector with the document column (default true)", func(s string) error {
		return flagBool(s, &c.conf.Nullable)
	})
	f.BoolVar(&c.metrics, "metrics", false, "log scan metrics on completion")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) != 1 {
		return charm.NeedHelp
	}
	if err := c.conf.Validate(); err != nil {
		return err
	}
	logger, err := c.Logger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	r := io.Reader(os.Stdin)
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	ctx := context.Background()
	seg, err := Load(ctx, r, c.conf)
	if err != nil {
		return err
	}
	logger.Info("segment loaded",
		zap.Stringer("id", seg.ID()),
		zap.Uint32("rows", seg.NumRows()))
	stats := column.NewStats()
	enc := json.NewEncoder(os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		enc.SetIndent("", "  ")
	}
	if err := Scan(seg, c.conf, stats, logger, enc.Encode); err != nil {
		return err
	}
	if c.metrics {
		return logMetrics(logger, stats)
	}
	return nil
}

// Scan reads every row of the configured column of seg through a
// runtime-flattening reader and passes each row to emit.
func Scan(seg *segment.Segment, conf Config, stats *column.Stats, logger *zap.Logger, emit func(any) error) error {
	col, err := seg.Column(conf.Column)
	if err != nil {
		return err
	}
	paths, types := conf.Descriptors()
	it := jsoncol.NewDynamicFlatIterator(col.NewIterator(), paths, types, column.NewAccessPath(conf.Column))
	if err := it.Init(&column.Options{Stats: stats, Logger: logger}); err != nil {
		return err
	}
	for {
		var dst vector.Any = vector.NewDocument()
		if col.Nullable() {
			dst = vector.NewNullable(vector.NewBoolEmpty(), vector.NewDocument())
		}
		n, err := it.NextBatch(dst, conf.Batch)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		for slot := range n {
			if err := emit(vector.Interface(dst, slot)); err != nil {
				return err
			}
		}
	}
}

func logMetrics(logger *zap.Logger, stats *column.Stats) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(column.NewCollector("docflat", stats)); err != nil {
		return err
	}
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			fields := []zap.Field{zap.String("name", family.GetName())}
			for _, label := range m.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			logger.Info("metric", fields...)
		}
	}
	return nil
}

func flagUint32(s string, p *uint32) error {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return errors.New("must be a positive integer")
	}
	*p = uint32(n)
	return nil
}

func flagBool(s string, p *bool) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*p = b
	return nil
}

package scan

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/brimdata/docflat/segment"
	"github.com/brimdata/docflat/vector"
	"github.com/goccy/go-json"
)

const maxLine = 64 * 1024 * 1024

// Load reads newline-delimited JSON documents from r into a segment with a
// single raw document column.  Blank lines and the literal null are null
// documents.
func Load(ctx context.Context, r io.Reader, conf Config) (*segment.Segment, error) {
	docs := vector.NewDocument()
	nulls := vector.NewBoolEmpty()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLine)
	var line int
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 || string(b) == "null" {
			docs.AppendRaw(nil)
			nulls.AppendBool(true)
			continue
		}
		if !json.Valid(b) {
			return nil, fmt.Errorf("line %d: invalid JSON", line)
		}
		docs.AppendRaw(b)
		nulls.AppendBool(false)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	var vec vector.Any = docs
	if conf.Nullable {
		vec = vector.NewNullable(nulls, docs)
	}
	b := segment.NewBuilder(conf.Segment)
	if err := b.Add(conf.Column, vec); err != nil {
		return nil, err
	}
	return b.Build(ctx)
}

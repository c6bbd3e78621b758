package segment

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/brimdata/docflat/vector"
	"github.com/hashicorp/golang-lru/arc/v2"
	"github.com/segmentio/ksuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageRows   = 1024
	DefaultCachePages = 256
)

// Config sizes the pages of a segment and its decoded-page cache.
type Config struct {
	PageRows   uint32 `yaml:"page_rows"`
	CachePages int    `yaml:"cache_pages"`
}

func (c Config) withDefaults() Config {
	if c.PageRows == 0 {
		c.PageRows = DefaultPageRows
	}
	if c.CachePages <= 0 {
		c.CachePages = DefaultCachePages
	}
	return c
}

var ErrColumnExists = errors.New("column already exists")

// Builder collects the columns of a segment in memory.  Every column must
// have the same number of rows.
type Builder struct {
	conf    Config
	names   []string
	vecs    []vector.Any
	deleted *roaring.Bitmap
}

func NewBuilder(conf Config) *Builder {
	return &Builder{
		conf:    conf.withDefaults(),
		deleted: roaring.New(),
	}
}

// Add adds a column.  vec must be a Bool, Int, Float, String, or raw
// Document vector, or a Nullable of one of these.
func (b *Builder) Add(name string, vec vector.Any) error {
	for _, n := range b.names {
		if n == name {
			return fmt.Errorf("%w: %q", ErrColumnExists, name)
		}
	}
	if _, ok := vec.(*vector.Const); ok {
		return fmt.Errorf("column %q: constant vectors cannot be stored", name)
	}
	if len(b.vecs) > 0 && vec.Len() != b.vecs[0].Len() {
		return fmt.Errorf("column %q has %d rows, segment has %d", name, vec.Len(), b.vecs[0].Len())
	}
	b.names = append(b.names, name)
	b.vecs = append(b.vecs, vec)
	return nil
}

// Delete marks rows as deleted.  Deleted rows remain readable and the
// vectors holding them are flagged with vector.MayHaveDelete.
func (b *Builder) Delete(rowids ...uint32) {
	b.deleted.AddMany(rowids)
}

// Build encodes every page of every column concurrently.
func (b *Builder) Build(ctx context.Context) (*Segment, error) {
	var numRows uint32
	if len(b.vecs) > 0 {
		numRows = b.vecs[0].Len()
	}
	cache, err := arc.NewARC[pageKey, vector.Any](b.conf.CachePages)
	if err != nil {
		return nil, err
	}
	seg := &Segment{
		id:       ksuid.New(),
		numRows:  numRows,
		pageRows: b.conf.PageRows,
		deleted:  b.deleted.Clone(),
		cache:    cache,
	}
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for k, vec := range b.vecs {
		_, values := vector.Split(vec)
		col := &Column{
			seg:      seg,
			id:       k,
			name:     b.names[k],
			typ:      values.Type(),
			nullable: values != vec,
			pages:    make([]*page, (numRows+b.conf.PageRows-1)/b.conf.PageRows),
		}
		seg.columns = append(seg.columns, col)
		for n := range col.pages {
			first := uint32(n) * b.conf.PageRows
			length := min(b.conf.PageRows, numRows-first)
			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				p, err := encodePage(vec, first, length)
				if err != nil {
					return fmt.Errorf("column %q: %w", col.name, err)
				}
				col.pages[n] = p
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return seg, nil
}

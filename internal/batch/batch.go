// Package batch converts every matching file in a directory, one at a time,
// and reports one outcome line per file.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/tsawler/htmlcsv"
)

// DefaultPattern selects the exported quote files.
const DefaultPattern = "*.txt"

// Options configures a batch run.
type Options struct {
	Dir      string // defaults to "."
	Pattern  string // doublestar pattern relative to Dir, defaults to DefaultPattern
	Unescape bool
	Out      io.Writer // outcome lines; defaults to os.Stdout
	Logger   *zap.Logger
}

// Summary describes a finished run.
type Summary struct {
	Found     int
	Succeeded int
	Failed    int
	NoInput   bool
	Results   []htmlcsv.Result
}

// Discover returns the regular files under dir matching pattern, joined
// with dir. The order is the glob's directory order and carries no meaning.
// Hidden files and directories (a name starting with ".") are skipped
// unless a segment of pattern itself starts with ".".
func Discover(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("globbing %q in %s: %w", pattern, dir, err)
	}

	allowHidden := hasHiddenSegment(pattern)
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if !allowHidden && hasHiddenSegment(m) {
			continue
		}
		files = append(files, filepath.Join(dir, filepath.FromSlash(m)))
	}
	return files, nil
}

// hasHiddenSegment reports whether any "/"-separated segment of p starts with ".".
func hasHiddenSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}
	return false
}

// Run converts every file matching opts.Pattern in opts.Dir. A file that
// fails is reported and the run moves on to the next one; failed files
// never make Run return an error. An error is returned only for an invalid
// pattern or when ctx is done, which stops the run before the next file.
func Run(ctx context.Context, opts Options) (Summary, error) {
	opts = withDefaults(opts)
	log := opts.Logger.With(zap.String("dir", opts.Dir), zap.String("pattern", opts.Pattern))

	files, err := Discover(opts.Dir, opts.Pattern)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Found: len(files)}
	if len(files) == 0 {
		summary.NoInput = true
		fmt.Fprintf(opts.Out, "Error: no %s files found\n", opts.Pattern)
		log.Warn("no input files")
		return summary, nil
	}

	fmt.Fprintf(opts.Out, "Found %d %s files to process\n", len(files), opts.Pattern)

	conv := htmlcsv.Open("").WithLogger(opts.Logger)
	if opts.Unescape {
		conv = conv.UnescapeEntities()
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", zap.Int("remaining", len(files)-len(summary.Results)))
			return summary, err
		}

		res := conv.Input(file).Convert()
		summary.Results = append(summary.Results, res)
		if res.OK() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		fmt.Fprintln(opts.Out, res.Message())
	}

	fmt.Fprintln(opts.Out, "All files processed")
	log.Info("batch finished",
		zap.Int("found", summary.Found),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)

	return summary, nil
}

func withDefaults(opts Options) Options {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Pattern == "" {
		opts.Pattern = DefaultPattern
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

// Package lint checks style attributes of markup files, directories and
// archives.
package lint

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"flexstyle/archive"
	"flexstyle/markup"
	"flexstyle/state"
)

// Run implements "lint" command.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("lint")

	if cmd.NArg() == 0 {
		return errors.New("no input source has been specified")
	}

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		enc, err := ianaindex.IANA.Encoding(cp)
		if err != nil || enc == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		} else {
			env.CodePage = enc
			n, _ := ianaindex.IANA.Name(enc)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	l := newLinter(env, log)
	defer func(start time.Time) {
		log.Info("Processing completed",
			zap.Int("files", l.files), zap.Int("unreadable", l.unreadable),
			zap.Int("elements", l.elements), zap.Int("failed", l.failed),
			zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	for _, src := range cmd.Args().Slice() {
		abs, err := filepath.Abs(src)
		if err != nil {
			return err
		}
		if err := l.process(ctx, abs); err != nil {
			return err
		}
	}
	switch {
	case l.errs == nil:
		return nil
	case l.unreadable > 0:
		return fmt.Errorf("%d of %d styled elements failed, %d of %d documents unreadable: %w",
			l.failed, l.elements, l.unreadable, l.files, l.errs)
	default:
		return fmt.Errorf("%d of %d styled elements failed: %w", l.failed, l.elements, l.errs)
	}
}

type linter struct {
	env     *state.LocalEnv
	log     *zap.Logger
	scanner *markup.Scanner
	exts    []string

	files    int
	elements int
	failed   int

	unreadable int // documents which could not be read as markup at all
	errs       error
}

func newLinter(env *state.LocalEnv, log *zap.Logger) *linter {
	return &linter{
		env:     env,
		log:     log,
		scanner: markup.NewScanner(log, env.Cfg.Markup.StyleAttribute),
		exts:    env.Cfg.Markup.Extensions,
	}
}

// process determines the input type (directory, archive with optional path
// inside, or single file) and checks it accordingly.
func (l *linter) process(ctx context.Context, src string) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return l.processDir(ctx, head)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			pathIn := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := l.processArchive(ctx, head, pathIn); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		if len(tail) == 0 && isMarkupFile(head, l.exts) {
			return l.processFile(head)
		}
		return fmt.Errorf("input was not recognized as markup (%s)", head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir walks directory tree finding markup files and archives.
func (l *linter) processDir(ctx context.Context, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			l.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		isArchive, err := isArchiveFile(path)
		if err != nil {
			l.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			if err := l.processArchive(ctx, path, ""); err != nil {
				l.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}
		if !isMarkupFile(path, l.exts) {
			l.log.Debug("Skipping file, not recognized as markup or archive", zap.String("file", path))
			return nil
		}
		return l.processFile(path)
	})
}

// processArchive finds markup files under "pathIn" inside archive.
func (l *linter) processArchive(ctx context.Context, path, pathIn string) error {
	filter := archive.Filter{Prefix: pathIn, Extensions: l.exts}
	return archive.Walk(path, filter, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := l.entryName(f)
		data, err := archive.ReadFile(f)
		if err != nil {
			l.log.Error("Unable to read file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			return nil
		}

		source := filepath.ToSlash(filepath.Join(filepath.Base(arc), name))
		if l.check(bytes.NewReader(data), source) {
			l.env.Rpt.StoreData("input/"+source, data)
		}
		return nil
	})
}

func (l *linter) processFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	if l.check(f, path) {
		if err := l.env.Rpt.StoreCopy("input/"+filepath.Base(path), path); err != nil {
			l.log.Warn("Unable to store file in report", zap.String("file", path), zap.Error(err))
		}
	}
	return nil
}

// check scans markup and records failures, returns true if document had any.
func (l *linter) check(r io.Reader, source string) bool {
	l.files++

	results, err := l.scanner.Scan(r)
	if err != nil {
		l.unreadable++
		l.errs = multierr.Append(l.errs, fmt.Errorf("%s: %w", source, err))
		l.log.Error("Unable to read markup", zap.String("file", source), zap.Error(err))
		return true
	}

	failed := false
	for _, res := range results {
		l.elements++
		for _, w := range res.Warnings {
			l.log.Warn("Declaration skipped", zap.String("file", source), zap.String("element", res.Path), zap.String("reason", w))
		}
		if res.Err == nil {
			continue
		}
		failed = true
		l.failed++
		for _, e := range multierr.Errors(res.Err) {
			l.errs = multierr.Append(l.errs, fmt.Errorf("%s%s: %w", source, res.Path, e))
			l.log.Error("Invalid style", zap.String("file", source), zap.String("element", res.Path), zap.Error(e))
		}
	}
	l.log.Debug("Markup checked", zap.String("file", source), zap.Int("elements", len(results)))
	return failed
}

// entryName returns archive entry name, converted from forced code page if
// necessary.
func (l *linter) entryName(f *zip.File) string {
	name := f.Name
	cp := l.env.CodePage
	if cp == nil || !f.NonUTF8 {
		return name
	}
	if n, err := cp.NewDecoder().String(name); err == nil {
		return n
	} else {
		cpName, _ := ianaindex.IANA.Name(cp)
		l.log.Warn("Unable to convert archive name from specified encoding",
			zap.String("charset", cpName), zap.String("path", name), zap.Error(err))
	}
	return name
}

package transcode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"flexstyle/config"
	"flexstyle/css"
	"flexstyle/markup"
	"flexstyle/state"
	"flexstyle/style"
)

// Decode implements "decode" command: JSON style document to configured
// output format.
func Decode(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("decode")

	data, src, err := readSource(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	rec, err := style.NewParser(log).Parse(data)
	if err != nil {
		logFailures(log, src, err)
		return fmt.Errorf("unable to decode style from %s: %w", src, err)
	}
	return output(env, cmd, rec)
}

// Inline implements "inline" command: inline CSS declaration list to
// configured output format.
func Inline(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inline")

	data, src, err := readSource(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	fields, warnings := css.NewParser(log).ParseInline(data)
	for _, w := range warnings {
		log.Warn("Declaration skipped", zap.String("source", src), zap.String("reason", w))
	}
	rec, err := style.NewParser(log).ParseFields(fields)
	if err != nil {
		logFailures(log, src, err)
		return fmt.Errorf("unable to decode style from %s: %w", src, err)
	}
	return output(env, cmd, rec)
}

// Format implements "fmt" command: rewrites style attributes of markup
// document in canonical form.
func Format(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fmt")

	if cmd.NArg() == 0 {
		return fmt.Errorf("no input markup has been specified")
	}
	if cmd.NArg() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	data, src, err := readSource(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	// destination may be the source itself, so nothing is written until
	// document is completely rewritten
	var out bytes.Buffer
	scanner := markup.NewScanner(log, env.Cfg.Markup.StyleAttribute)
	results, err := scanner.Rewrite(&out, bytes.NewReader(data), Attribute(cmd.Bool("css")))
	if err != nil {
		return fmt.Errorf("unable to format %s: %w", src, err)
	}

	if dst := cmd.Args().Get(1); len(dst) > 0 {
		if err := os.WriteFile(dst, out.Bytes(), 0644); err != nil {
			return fmt.Errorf("unable to write destination file '%s': %w", dst, err)
		}
	} else if _, err := env.Stdout.Write(out.Bytes()); err != nil {
		return fmt.Errorf("unable to write markup: %w", err)
	}

	var errs error
	for _, res := range results {
		for _, w := range res.Warnings {
			log.Warn("Declaration dropped", zap.String("element", res.Path), zap.String("reason", w))
		}
		if res.Err != nil {
			log.Error("Element left unchanged", zap.String("element", res.Path), zap.Error(res.Err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", res.Path, res.Err))
		}
	}
	if errs != nil {
		env.Rpt.StoreData("input/"+filepath.Base(src), data)
		return fmt.Errorf("%d of %d styled elements left unchanged: %w", len(multierr.Errors(errs)), len(results), errs)
	}
	log.Debug("Markup formatted", zap.String("source", src), zap.Int("elements", len(results)))
	return nil
}

// output renders record to STDOUT using configured format, possibly
// overwritten from command line.
func output(env *state.LocalEnv, cmd *cli.Command, rec *style.Record) error {
	conf := env.Cfg.Output
	format := conf.Format
	if f := cmd.String("format"); len(f) > 0 {
		var err error
		if format, err = config.ParseOutputFormat(f); err != nil {
			return fmt.Errorf("bad output format: %w", err)
		}
	}
	if cmd.Bool("compact") {
		conf.Indent = 0
		conf.OmitAbsent = true
	}
	return Render(env.Stdout, rec, format, conf)
}

// readSource reads whole input, STDIN when source is empty or "-".
func readSource(env *state.LocalEnv, source string) ([]byte, string, error) {
	if len(source) == 0 || source == "-" {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("unable to read STDIN: %w", err)
		}
		return data, "STDIN", nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, "", fmt.Errorf("unable to read input: %w", err)
	}
	return data, source, nil
}

func logFailures(log *zap.Logger, src string, err error) {
	for _, e := range multierr.Errors(err) {
		log.Error("Invalid style", zap.String("source", src), zap.Error(e))
	}
}

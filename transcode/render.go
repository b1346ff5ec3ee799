// Package transcode implements commands converting style descriptions
// between supported text forms.
package transcode

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"flexstyle/config"
	"flexstyle/css"
	"flexstyle/style"
)

// Render writes record to w in requested format, output is always terminated
// by new line.
func Render(w io.Writer, rec *style.Record, format config.OutputFormat, conf config.OutputConfig) error {
	switch format {
	case config.OutputFormatJson:
		data, err := style.Encode(rec, style.EncodeOptions{OmitAbsent: conf.OmitAbsent, Indent: conf.IndentString()})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	case config.OutputFormatYaml:
		enc := yaml.NewEncoder(w)
		if conf.Indent >= 2 {
			enc.SetIndent(conf.Indent)
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputFormatCss:
		if _, err := css.WriteTo(w, rec); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
	return nil
}

// Attribute renders record as a single line suitable for markup attribute:
// inline declaration list or compact JSON without absent properties.
func Attribute(asCSS bool) func(*style.Record) (string, error) {
	return func(rec *style.Record) (string, error) {
		if asCSS {
			return css.Format(rec), nil
		}
		data, err := style.Encode(rec, style.EncodeOptions{OmitAbsent: true})
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

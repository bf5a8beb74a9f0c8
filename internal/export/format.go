// Package export renders palettes as CSS custom properties, Tailwind config,
// JSON, YAML and an HTML swatch sheet.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emiliopalmerini/palette/internal/domain"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown export format")

// Format identifies an export target.
type Format string

const (
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatHTML     Format = "html"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSS, FormatTailwind, FormatJSON, FormatYAML, FormatHTML}

// DefaultPrefix is the CSS custom property prefix used when none is given.
const DefaultPrefix = "palette"

// Options tunes rendering.
type Options struct {
	CSSPrefix string
}

func (o Options) prefix() string {
	if o.CSSPrefix == "" {
		return DefaultPrefix
	}
	return o.CSSPrefix
}

// ParseFormat resolves a format name; "yml" and "tw" are accepted aliases.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatCSS, FormatTailwind, FormatJSON, FormatYAML, FormatHTML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "tw":
		return FormatTailwind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension returns the file extension written for f.
func (f Format) Extension() string {
	switch f {
	case FormatTailwind:
		return ".tailwind.js"
	case FormatYAML:
		return ".yaml"
	default:
		return "." + string(f)
	}
}

// Render writes p in format f to w.
func Render(ctx context.Context, w io.Writer, p *domain.Palette, f Format, opts Options) error {
	switch f {
	case FormatCSS:
		_, err := io.WriteString(w, CSS(p, opts.prefix())+"\n")
		return err
	case FormatTailwind:
		_, err := io.WriteString(w, Tailwind(p)+"\n")
		return err
	case FormatJSON:
		b, err := JSON(p)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatYAML:
		b, err := YAML(p)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatHTML:
		return HTML(p).Render(ctx, w)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Slug lowercases s and replaces spaces with dashes.
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// Package adapter contains the infrastructure collaborators of previewgen:
// schema loading, source formatting and snapshot persistence.
package adapter

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/evanw/esbuild/pkg/api"
)

// ErrFormat is returned when generated source cannot be parsed by the formatter.
var ErrFormat = errors.New("format source")

// formatPrefix turns an arbitrary expression into a statement esbuild keeps.
const formatPrefix = "const __example = "

// SourceFormatter pretty-prints generated JavaScript so examples injected into
// a preview read like hand-written code.
type SourceFormatter interface {
	// FormatExpression parses source as a single expression and returns it
	// reprinted with canonical whitespace.
	FormatExpression(ctx context.Context, source string) (string, error)
}

// ESBuildFormatter implements SourceFormatter with esbuild's printer.
type ESBuildFormatter struct{}

// NewESBuildFormatter constructs an ESBuildFormatter.
func NewESBuildFormatter() *ESBuildFormatter {
	return &ESBuildFormatter{}
}

// FormatExpression implements SourceFormatter.
func (f *ESBuildFormatter) FormatExpression(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	result := api.Transform(formatPrefix+"(\n"+source+"\n);", api.TransformOptions{
		Loader:  api.LoaderJS,
		Charset: api.CharsetUTF8,
	})

	if len(result.Errors) > 0 {
		msg := result.Errors[0]
		return "", errors.Wrapf(ErrFormat, "%s", msg.Text)
	}

	code := strings.TrimSpace(string(result.Code))
	if !strings.HasPrefix(code, formatPrefix) {
		return "", errors.Wrapf(ErrFormat, "unexpected formatter output %q", code)
	}

	code = strings.TrimPrefix(code, formatPrefix)
	code = strings.TrimSuffix(code, ";")

	return code, nil
}

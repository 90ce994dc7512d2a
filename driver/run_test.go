package driver_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skink-lang/skink/driver"
	"github.com/skink-lang/skink/interp"
	"github.com/skink-lang/skink/lexer"
	"github.com/skink-lang/skink/token"
)

func TestGetTokens(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var diag bytes.Buffer
	runner := driver.NewRunner()
	runner.SetErrOutput(&diag)

	tokens, err := runner.GetTokens("(1 + 2) * 3")
	assert.NoError(err)
	assert.Empty(diag.String())
	if assert.Len(tokens, 8) {
		assert.Equal(token.LEFTPAREN, tokens[0].Kind)
		assert.Equal(token.EOF, tokens[len(tokens)-1].Kind)
	}
}

func TestGetTokensWithholdsStreamOnError(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var diag bytes.Buffer
	runner := driver.NewRunner()
	runner.SetErrOutput(&diag)

	tokens, err := runner.GetTokens("@ ()\n&")
	assert.Nil(tokens)
	assert.Error(err)

	var scanErr lexer.Error
	assert.True(errors.As(err, &scanErr))
	assert.Equal("[line 1] Unexpected character\n[line 2] Unexpected character\n", diag.String())
}

func TestRunSourceFeedsPasses(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var out, diag bytes.Buffer
	runner := driver.NewRunner()
	runner.SetErrOutput(&diag)
	runner.AddPass(interp.New(&out))

	err := runner.RunSource("print 42;")
	assert.NoError(err)
	assert.Equal(
		"{PRINT, \"print\", 1, <nil>}\n"+
			"{NUMBER, \"42\", 1, 42}\n"+
			"{SEMICOLON, \";\", 1, <nil>}\n"+
			"{EOF, \"\", 1, <nil>}\n",
		out.String())
}

func TestRunSourceStopsOnScanError(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var out, diag bytes.Buffer
	runner := driver.NewRunner()
	runner.SetErrOutput(&diag)
	runner.AddPass(interp.New(&out))

	err := runner.RunSource("@")
	assert.Error(err)
	assert.Empty(out.String(), "passes must not see a stream that failed to scan")
	assert.Equal("[line 1] Unexpected character\n", diag.String())
}

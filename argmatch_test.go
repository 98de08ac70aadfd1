package argmatch

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T, configs ...ConfigureParserFunc) *Parser {
	t.Helper()
	configs = append([]ConfigureParserFunc{
		WithProgramName("test"),
		WithOutput(&bytes.Buffer{}),
		WithErrorOutput(&bytes.Buffer{}),
		WithLineWidth(80),
	}, configs...)
	p, err := NewParserWith(configs...)
	require.NoError(t, err)

	return p
}

func TestParser_HelpOption(t *testing.T) {
	var out bytes.Buffer
	p := newTestParser(t,
		WithOutput(&out),
		WithOption(NewOption([]string{"-h", "--help"},
			WithType(types.Help),
			WithText("Show help message."),
			WithID(10))))

	result, err := p.Parse([]string{"--help"})
	require.NoError(t, err)
	assert.True(t, result.Has("--help"))
	assert.Equal(t, types.ResultStop, result.Code())

	special, err := result.SpecialOption()
	require.NoError(t, err)
	assert.Equal(t, 10, special.ID())

	v, err := result.Value("--help")
	require.NoError(t, err)
	b, err := v.AsBool(false)
	assert.NoError(t, err)
	assert.True(t, b, "help options record a true value")
	assert.Equal(t, "USAGE\n  test [-h]\nOPTIONS\n  -h, --help  Show help message.\n", out.String())
}

func TestParser_ConflictingFlags(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-h", "--help"}, WithType(types.Help))),
		WithOption(NewOption([]string{"-h"}, WithText("Output height."))))

	result, err := p.Parse([]string{"--help"})
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, errs.ErrDuplicateFlag))
	assert.True(t, errors.Is(err, errs.ErrConfiguration), "duplicate flags are configuration errors")
}

func TestParser_StringArgument(t *testing.T) {
	p := newTestParser(t, WithArgument(NewArgument("file")))

	result, err := p.Parse([]string{"test_file.txt"})
	require.NoError(t, err)
	v, err := result.Value("file")
	require.NoError(t, err)
	assert.Equal(t, "test_file.txt", v.String())
}

func TestParser_TwoArguments(t *testing.T) {
	p := newTestParser(t,
		WithArgument(NewArgument("arg1")),
		WithArgument(NewArgument("arg2")))

	result, err := p.Parse([]string{"foo", "bar"})
	require.NoError(t, err)
	v1, _ := result.Value("arg1")
	v2, _ := result.Value("arg2")
	assert.Equal(t, "foo", v1.String())
	assert.Equal(t, "bar", v2.String())
}

func TestParser_AppendList(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-n", "--number"},
			WithOperation(types.OpAppend),
			WithValue("NUM"))))

	result, err := p.Parse([]string{"-n", "12", "--number", "20", "--number=6", "-n15"})
	require.NoError(t, err)
	assert.Equal(t, types.ResultNormal, result.Code())

	values, err := result.Values("-n")
	require.NoError(t, err)
	numbers, err := values.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{12, 20, 6, 15}, numbers)

	values, err = result.Values("--number")
	require.NoError(t, err)
	assert.Equal(t, 4, values.Len(), "all flags of an option share its values")
}

func TestParser_DashStyle(t *testing.T) {
	p := newTestParser(t,
		WithOptionStyle(types.Dash),
		WithOption(NewOption([]string{"-number"},
			WithOperation(types.OpAppend),
			WithValue("NUM"))))

	result, err := p.Parse([]string{"-number", "12", "-number", "20", "-number=6", "-number", "15"})
	require.NoError(t, err)
	assert.Equal(t, types.ResultNormal, result.Code())
	values, _ := result.Values("-number")
	assert.Equal(t, 4, values.Len())
}

func TestParser_SlashStyle(t *testing.T) {
	p := newTestParser(t,
		WithOptionStyle(types.Slash),
		WithOption(NewOption([]string{"/number"},
			WithOperation(types.OpAppend),
			WithValue("NUM"))))

	result, err := p.Parse([]string{"/number", "12", "/number", "20", "/number=6", "/number", "15"})
	require.NoError(t, err)
	values, _ := result.Values("/number")
	numbers, err := values.Ints()
	require.NoError(t, err)
	assert.Equal(t, []int{12, 20, 6, 15}, numbers)
}

func TestParser_IncorrectSlashOption(t *testing.T) {
	p := newTestParser(t,
		WithOptionStyle(types.Slash),
		WithOption(NewOption([]string{"/bill"})),
		WithArgument(NewArgument("file")))

	result, err := p.Parse([]string{"/benny"})
	assert.Equal(t, types.ResultError, result.Code())
	assert.True(t, errors.Is(err, errs.ErrUnknownOption))
	assert.True(t, errors.Is(err, errs.ErrParse))
	assert.Equal(t, err, result.Err())
}

func TestParser_OptionStyleChange(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.AddArgument(NewArgument("file")))
	assert.NoError(t, p.SetOptionStyle(types.Dash), "arguments don't fix the option style")
	require.NoError(t, p.AddOption(NewOption([]string{"-p"})))
	assert.NoError(t, p.SetOptionStyle(types.Dash), "setting the same style is allowed")

	err := p.SetOptionStyle(types.Standard)
	assert.True(t, errors.Is(err, errs.ErrStyleChange))
	assert.True(t, errors.Is(err, errs.ErrConfiguration))
	assert.Equal(t, types.Dash, p.OptionStyle())
}

func TestParser_Iterator(t *testing.T) {
	p := newTestParser(t,
		WithArgument(NewArgument("arg1", WithCount(0, 9), WithID(1))),
		WithArgument(NewArgument("arg2", WithID(2))))

	it, err := p.Iterator([]string{"foo", "bar", "baz"})
	require.NoError(t, err)

	expected := []struct {
		id    int
		name  string
		value string
	}{
		{1, "arg1", "foo"},
		{1, "arg1", "bar"},
		{2, "arg2", "baz"},
	}
	for _, e := range expected {
		d, value, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, e.id, d.ID())
		assert.Equal(t, types.KindArgument, d.Kind())
		a, isArgument := d.(*Argument)
		require.True(t, isArgument)
		assert.Equal(t, e.name, a.Name())
		assert.Equal(t, e.value, value)
	}

	d, value, ok := it.Next()
	assert.False(t, ok)
	assert.Nil(t, d)
	assert.Empty(t, value)
	assert.NoError(t, it.Err())
	assert.Equal(t, types.ResultNormal, it.Result().Code())
}

func TestParser_IteratorReturnsOptions(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-v"})),
		WithOption(NewOption([]string{"-o"}, WithValue("FILE"))),
		WithArgument(NewArgument("file")))

	it, err := p.Iterator([]string{"-v", "-o", "out.txt", "in.txt"})
	require.NoError(t, err)

	var seen []string
	for d, value, ok := it.Next(); ok; d, value, ok = it.Next() {
		seen = append(seen, d.DisplayName()+"="+value)
	}
	assert.Equal(t, []string{"-v=1", "-o=out.txt", "<file>=in.txt"}, seen)
}

func TestParser_StopOption(t *testing.T) {
	p := newTestParser(t,
		WithArgument(NewArgument("arg")),
		WithOption(NewOption([]string{"--version"}, WithType(types.Stop))))

	result, err := p.Parse([]string{"--version", "arg 1", "arg 2"})
	require.NoError(t, err, "stop options end the parse without checking arguments")
	assert.Equal(t, types.ResultStop, result.Code())

	option, err := result.SpecialOption()
	require.NoError(t, err)
	assert.Equal(t, "--version", option.Flags()[0])
	assert.Equal(t, []string{"arg 1", "arg 2"}, result.Unprocessed())
}

func TestParser_LastArgumentOption(t *testing.T) {
	p := newTestParser(t,
		WithArgument(NewArgument("arg")),
		WithOption(NewOption([]string{"--"}, WithType(types.LastArgument))))

	result, err := p.Parse([]string{"--", "arg 1"})
	assert.Equal(t, types.ResultError, result.Code())
	assert.True(t, errors.Is(err, errs.ErrMissingArgument))
	assert.Equal(t, []string{"arg 1"}, result.Unprocessed())

	result, err = p.Parse([]string{"file", "--", "-x", "rest"})
	require.NoError(t, err)
	v, _ := result.Value("arg")
	assert.Equal(t, "file", v.String())
	assert.Equal(t, []string{"-x", "rest"}, result.Unprocessed())
}

func TestParser_LastOptionOption(t *testing.T) {
	p := newTestParser(t,
		WithArgument(NewArgument("arg")),
		WithOption(NewOption([]string{"--bar"})),
		WithOption(NewOption([]string{"--"}, WithType(types.LastOption))))

	result, err := p.Parse([]string{"--bar", "--", "--bar"})
	require.NoError(t, err)
	assert.Equal(t, types.ResultNormal, result.Code())

	bar, _ := result.Value("--bar")
	b, _ := bar.AsBool(false)
	assert.True(t, b)
	dashes, _ := result.Value("--")
	b, _ = dashes.AsBool(false)
	assert.True(t, b)
	arg, _ := result.Value("arg")
	assert.Equal(t, "--bar", arg.String(), "options after the last option are positional")
}

func TestParser_LastArgumentAfterLastOption(t *testing.T) {
	p := newTestParser(t,
		WithArgument(NewArgument("files", WithCount(0, types.Unbounded))),
		WithOption(NewOption([]string{"--"}, WithType(types.LastOption))),
		WithOption(NewOption([]string{"---"}, WithType(types.LastArgument))))

	result, err := p.Parse([]string{"--", "-x", "---", "rest"})
	require.NoError(t, err)
	files, _ := result.Values("files")
	assert.Equal(t, []string{"-x"}, files.Strings())
	assert.Equal(t, []string{"rest"}, result.Unprocessed())
	assert.True(t, result.Has("---"))
}

func TestParser_StackedShortFlags(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-a"})),
		WithOption(NewOption([]string{"-b"})),
		WithOption(NewOption([]string{"-n"}, WithValue())))

	result, err := p.Parse([]string{"-abn5"})
	require.NoError(t, err)
	assert.True(t, result.Has("-a"))
	assert.True(t, result.Has("-b"))
	n, _ := result.Value("-n")
	assert.Equal(t, "5", n.String())
}

func TestParser_StackedShortFlagsWithEmbeddedValue(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-n"})),
		WithOption(NewOption([]string{"-a"})),
		WithOption(NewOption([]string{"-b"}, WithValue())))

	result, err := p.Parse([]string{"-nab=c"})
	require.NoError(t, err)
	assert.True(t, result.Has("-n"))
	assert.True(t, result.Has("-a"))
	b, _ := result.Value("-b")
	assert.Equal(t, "c", b.String())
}

func TestParser_OptionValues(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-n", "--number"}, WithValue())),
		WithOption(NewOption([]string{"--all"})),
		WithOption(NewOption([]string{"--size="}, WithValue())))

	tests := []struct {
		name     string
		args     []string
		flag     string
		expected string
		err      error
	}{
		{"separate value", []string{"-n", "1"}, "-n", "1", nil},
		{"value that looks like a flag", []string{"-n", "-5"}, "-n", "-5", nil},
		{"embedded value", []string{"--number=7"}, "-n", "7", nil},
		{"empty embedded value", []string{"--number="}, "-n", "", nil},
		{"embedded only", []string{"--size=10"}, "--size=", "10", nil},
		{"embedded only without value", []string{"--size", "10"}, "", "", errs.ErrMissingValue},
		{"missing value", []string{"-n"}, "", "", errs.ErrMissingValue},
		{"value not allowed", []string{"--all=3"}, "", "", errs.ErrValueNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Parse(tt.args)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "got %v", err)
				assert.Equal(t, types.ResultError, result.Code())
				return
			}
			require.NoError(t, err)
			v, err := result.Value(tt.flag)
			require.NoError(t, err)
			assert.True(t, v.Has())
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestParser_AbbreviatedOptions(t *testing.T) {
	p := newTestParser(t,
		WithAbbreviatedOptions(true),
		WithOption(NewOption([]string{"--verbose"})),
		WithOption(NewOption([]string{"--version"}, WithType(types.Stop))),
		WithOption(NewOption([]string{"--output"}, WithValue())))

	result, err := p.Parse([]string{"--verb", "--out=x"})
	require.NoError(t, err)
	assert.True(t, result.Has("--verbose"))
	out, _ := result.Value("--output")
	assert.Equal(t, "x", out.String())

	result, err = p.Parse([]string{"--ver"})
	assert.True(t, errors.Is(err, errs.ErrAmbiguousOption))
	assert.Contains(t, err.Error(), "--verbose, --version")
	assert.Equal(t, types.ResultError, result.Code())
}

func TestParser_CaseInsensitive(t *testing.T) {
	p := newTestParser(t,
		WithCaseInsensitive(true),
		WithOption(NewOption([]string{"--Verbose"})),
		WithArgument(NewArgument("File")))

	result, err := p.Parse([]string{"--VERBOSE", "x"})
	require.NoError(t, err)
	assert.True(t, result.Has("--verbose"))
	v, err := result.Value("file")
	require.NoError(t, err)
	assert.Equal(t, "x", v.String())
}

func TestParser_CaseSensitiveByDefault(t *testing.T) {
	p := newTestParser(t, WithOption(NewOption([]string{"--verbose"})))

	_, err := p.Parse([]string{"--VERBOSE"})
	assert.True(t, errors.Is(err, errs.ErrUnknownOption))
}

func TestParser_UndefinedArguments(t *testing.T) {
	p := newTestParser(t, WithArgument(NewArgument("file")))

	result, err := p.Parse([]string{"a", "b"})
	assert.True(t, errors.Is(err, errs.ErrTooManyArguments))
	assert.Equal(t, types.ResultError, result.Code())

	p.SetIgnoreUndefinedArguments(true)
	result, err = p.Parse([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, result.Unprocessed())
}

func TestParser_UndefinedOptions(t *testing.T) {
	p := newTestParser(t, WithOption(NewOption([]string{"-v"})))

	_, err := p.Parse([]string{"--nope", "-v"})
	assert.True(t, errors.Is(err, errs.ErrUnknownOption))

	p.SetIgnoreUndefinedOptions(true)
	result, err := p.Parse([]string{"--nope", "-v"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--nope"}, result.Unprocessed())
	assert.True(t, result.Has("-v"))

	result, err = p.Parse([]string{"-vx"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-vx"}, result.Unprocessed(), "stacked flags with an undefined flag are passed through whole")
	assert.False(t, result.Has("-v"))
}

func TestParser_AmbiguousOptionsAreNeverIgnored(t *testing.T) {
	p := newTestParser(t,
		WithAbbreviatedOptions(true),
		WithIgnoreUndefinedOptions(true),
		WithOption(NewOption([]string{"--verbose"})),
		WithOption(NewOption([]string{"--version"})))

	_, err := p.Parse([]string{"--ver"})
	assert.True(t, errors.Is(err, errs.ErrAmbiguousOption))
}

func TestParser_MandatoryOption(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-o", "--output"}, WithValue(), SetMandatory(true))))

	result, err := p.Parse(nil)
	assert.True(t, errors.Is(err, errs.ErrMissingOption))
	assert.Contains(t, err.Error(), "-o, --output")
	assert.Equal(t, types.ResultError, result.Code())

	_, err = p.Parse([]string{"-o", "x"})
	assert.NoError(t, err)
}

func TestParser_Operations(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-n"}, WithValue(), WithOperation(types.OpAppend), WithValueName("numbers"))),
		WithOption(NewOption([]string{"--reset"}, WithOperation(types.OpClear), WithValueName("numbers"))),
		WithOption(NewOption([]string{"--seen"}, WithOperation(types.OpNone))))

	result, err := p.Parse([]string{"-n", "1", "-n", "2", "--reset", "-n", "3", "--seen"})
	require.NoError(t, err)
	numbers, err := result.Values("numbers")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, numbers.Strings())

	assert.True(t, result.Has("--seen"))
	seen, err := result.Value("--seen")
	require.NoError(t, err)
	assert.True(t, seen.Has())
	assert.Empty(t, seen.String(), "options with operation none record no value")
	present, err := seen.AsBool(false)
	assert.NoError(t, err)
	assert.True(t, present)
	n, err := seen.AsInt(7)
	assert.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, "fallback", seen.AsString("fallback"))

	result, err = p.Parse([]string{"-n", "1", "--reset"})
	require.NoError(t, err)
	assert.False(t, result.Has("numbers"))
}

func TestParser_SharedValueName(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"--verbose"}, WithConstant("2"), WithValueName("verbosity"))),
		WithOption(NewOption([]string{"--quiet"}, WithConstant("0"), WithValueName("verbosity"))))

	result, err := p.Parse([]string{"--verbose", "--quiet"})
	require.NoError(t, err)
	v, err := result.Value("verbosity")
	require.NoError(t, err)
	n, err := v.AsInt(1)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "the last option wins")
	assert.Equal(t, "--quiet", v.Definition().DisplayName())

	v, _ = result.Value("--verbose")
	assert.Equal(t, "0", v.String(), "flags of options sharing a value name read the shared value")
}

func TestParser_AmbiguousRead(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-n"}, WithValue(), WithOperation(types.OpAppend))))

	result, err := p.Parse([]string{"-n", "1", "-n", "2"})
	require.NoError(t, err)

	_, err = result.Value("-n")
	assert.True(t, errors.Is(err, errs.ErrAmbiguousRead))
	assert.True(t, errors.Is(err, errs.ErrUsage))

	_, err = result.Value("-x")
	assert.True(t, errors.Is(err, errs.ErrUnknownName))
}

func TestParser_ExactCountsWithKnownTotal(t *testing.T) {
	p := newTestParser(t,
		WithArgument(NewArgument("a", WithCount(2))),
		WithArgument(NewArgument("b", WithCount(0, types.Unbounded))),
		WithArgument(NewArgument("c", WithCount(1))))

	for n := 3; n <= 7; n++ {
		args := make([]string, n)
		for i := range args {
			args[i] = fmt.Sprint(i)
		}
		result, err := p.Parse(args)
		require.NoError(t, err, "n=%d", n)

		a, _ := result.Values("a")
		b, _ := result.Values("b")
		c, _ := result.Values("c")
		assert.Equal(t, []string{"0", "1"}, a.Strings(), "n=%d", n)
		assert.Equal(t, n-3, b.Len(), "n=%d", n)
		assert.Equal(t, []string{fmt.Sprint(n - 1)}, c.Strings(), "n=%d", n)
	}
}

func TestParser_PreCountSkipsOptionValues(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-n"}, WithValue())),
		WithArgument(NewArgument("first", WithOptional())),
		WithArgument(NewArgument("second")))

	result, err := p.Parse([]string{"-n", "5", "x"})
	require.NoError(t, err)
	assert.False(t, result.Has("first"))
	second, _ := result.Value("second")
	assert.Equal(t, "x", second.String())

	result, err = p.Parse([]string{"x", "-n", "5", "y"})
	require.NoError(t, err)
	first, _ := result.Value("first")
	second, _ = result.Value("second")
	assert.Equal(t, "x", first.String())
	assert.Equal(t, "y", second.String())
}

func TestParser_MissingArgument(t *testing.T) {
	p := newTestParser(t,
		WithArgument(NewArgument("source")),
		WithArgument(NewArgument("destination")))

	result, err := p.Parse([]string{"a"})
	assert.True(t, errors.Is(err, errs.ErrMissingArgument))
	assert.Equal(t, "missing argument: <destination>", err.Error())
	assert.Equal(t, types.ResultError, result.Code())
}

func TestParser_Callbacks(t *testing.T) {
	var calls []string
	record := func(d Definition, value string, b *ResultBuilder) error {
		calls = append(calls, d.DisplayName()+"="+value)
		return nil
	}

	p := newTestParser(t,
		WithGlobalArgumentCallback(record),
		WithGlobalOptionCallback(record),
		WithOption(NewOption([]string{"-v"}, WithCallback(func(d Definition, value string, b *ResultBuilder) error {
			return b.Append("log", "verbose on")
		}))),
		WithOption(NewOption([]string{"--log"}, WithValue(), WithOperation(types.OpAppend), WithValueName("log"))),
		WithArgument(NewArgument("file")))

	result, err := p.Parse([]string{"-v", "in.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-v=1", "<file>=in.txt"}, calls)

	log, _ := result.Values("log")
	assert.Equal(t, []string{"verbose on"}, log.Strings())
	assert.Equal(t, "--log", log.At(0).Definition().DisplayName())
}

func TestParser_CallbackError(t *testing.T) {
	cause := errors.New("not today")
	p := newTestParser(t,
		WithArgument(NewArgument("file", WithCallback(func(d Definition, value string, b *ResultBuilder) error {
			return cause
		}))))

	result, err := p.Parse([]string{"x"})
	assert.True(t, errors.Is(err, errs.ErrCallback))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, types.ResultError, result.Code())
}

func TestParser_CallbackReadsBuilder(t *testing.T) {
	var sawVerbose bool
	p := newTestParser(t,
		WithOption(NewOption([]string{"-v"})),
		WithArgument(NewArgument("file", WithCallback(func(d Definition, value string, b *ResultBuilder) error {
			sawVerbose = b.Has("-v")
			_, err := b.Value("nope")
			if !errors.Is(err, errs.ErrUnknownName) {
				return errors.New("expected unknown name")
			}
			return nil
		}))))

	_, err := p.Parse([]string{"-v", "x"})
	require.NoError(t, err)
	assert.True(t, sawVerbose)
}

func TestParser_AutoExitOnError(t *testing.T) {
	var stderr bytes.Buffer
	exitCode := -1
	p := newTestParser(t,
		WithAutoExit(true),
		WithErrorOutput(&stderr),
		WithExitFunc(func(code int) { exitCode = code }),
		WithOption(NewOption([]string{"-v"})),
		WithArgument(NewArgument("file")))

	_, err := p.Parse([]string{"--nothing", "a"})
	assert.Error(t, err)
	assert.Equal(t, 2, exitCode)
	assert.True(t, strings.HasPrefix(stderr.String(), "test: unknown option: --nothing\n"), stderr.String())
	assert.Contains(t, stderr.String(), "USAGE\n  test [-v] <file>\n")
}

func TestParser_AutoExitErrorUsageText(t *testing.T) {
	var stderr bytes.Buffer
	p := newTestParser(t,
		WithAutoExit(true),
		WithErrorOutput(&stderr),
		WithExitFunc(func(int) {}),
		WithHelpText(types.TextErrorUsage, "Run test --help for help."),
		WithArgument(NewArgument("file")))

	_, _ = p.Parse(nil)
	assert.Equal(t, "test: missing argument: <file>\nRun test --help for help.\n", stderr.String())
}

func TestParser_AutoExitOnStop(t *testing.T) {
	exitCode := -1
	p := newTestParser(t,
		WithAutoExit(true),
		WithExitFunc(func(code int) { exitCode = code }),
		WithOption(NewOption([]string{"--version"}, WithType(types.Stop))))

	_, err := p.Parse([]string{"--version"})
	assert.NoError(t, err)
	assert.Equal(t, 0, exitCode)
}

func TestParser_ManualModeWritesNoErrors(t *testing.T) {
	var stderr bytes.Buffer
	exited := false
	p := newTestParser(t,
		WithErrorOutput(&stderr),
		WithExitFunc(func(int) { exited = true }),
		WithArgument(NewArgument("file")))

	_, err := p.Parse(nil)
	assert.Error(t, err)
	assert.False(t, exited)
	assert.Empty(t, stderr.String())
}

func TestParser_ParseString(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-t", "--title"}, WithValue())),
		WithArgument(NewArgument("file")))

	result, err := p.ParseString(`--title "hello world" 'my file.txt'`)
	require.NoError(t, err)
	title, _ := result.Value("--title")
	file, _ := result.Value("file")
	assert.Equal(t, "hello world", title.String())
	assert.Equal(t, "my file.txt", file.String())

	result, err = p.ParseString(`--title "unterminated`)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, errs.ErrCommandLine))
	assert.True(t, errors.Is(err, errs.ErrParse))
}

func TestParser_ConcurrentParses(t *testing.T) {
	p := newTestParser(t,
		WithOption(NewOption([]string{"-n"}, WithValue(), WithOperation(types.OpAppend))),
		WithArgument(NewArgument("files", WithCount(1, types.Unbounded))))

	var wg sync.WaitGroup
	results := make([]*Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = p.Parse([]string{"-n", fmt.Sprint(i), fmt.Sprintf("file%d", i)})
		}(i)
	}
	wg.Wait()

	for i, result := range results {
		require.NotNil(t, result)
		n, _ := result.Value("-n")
		files, _ := result.Values("files")
		assert.Equal(t, fmt.Sprint(i), n.String())
		assert.Equal(t, []string{fmt.Sprintf("file%d", i)}, files.Strings())
	}
}

func TestParser_ResultByDefinition(t *testing.T) {
	file := NewArgument("file")
	verbose := NewOption([]string{"-v"})
	p := newTestParser(t, WithArgument(file), WithOption(verbose))

	result, err := p.Parse([]string{"-v", "x"})
	require.NoError(t, err)
	assert.True(t, result.HasDef(verbose))

	v, err := result.ValueOf(file)
	require.NoError(t, err)
	assert.Equal(t, "x", v.String())
	assert.Same(t, file, v.Definition())

	values, err := result.ValuesOf(file)
	require.NoError(t, err)
	assert.Equal(t, 1, values.Len())

	_, err = result.ValueOf(NewArgument("file"))
	assert.True(t, errors.Is(err, errs.ErrUnknownName), "definitions of other parsers are rejected")
	_, err = result.ValueOf(nil)
	assert.True(t, errors.Is(err, errs.ErrNilDefinition))

	assert.Len(t, result.Arguments(), 1)
	assert.Len(t, result.Options(), 1)
	_, err = result.SpecialOption()
	assert.True(t, errors.Is(err, errs.ErrNoSpecialOption))
}

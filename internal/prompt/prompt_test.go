package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalAskRepeatsUntilNonEmpty(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n   \n  Domain Name System \n"), &out)

	answer, err := p.Ask("Full name")
	require.NoError(t, err)
	assert.Equal(t, "Domain Name System", answer)
	assert.Equal(t, 3, strings.Count(out.String(), "Full name: "))
	assert.Contains(t, out.String(), "a value is required")
}

func TestTerminalAskWithoutInput(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Ask("Description")
	assert.True(t, errors.Is(err, ErrNoInput))
}

func TestTerminalAskLastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("value"), &bytes.Buffer{})

	answer, err := p.Ask("Description")
	require.NoError(t, err)
	assert.Equal(t, "value", answer)
}

func TestTerminalConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":    true,
		"Y\n":    true,
		"yes\n":  true,
		"YES\n":  true,
		"n\n":    false,
		"\n":     false,
		"nope\n": false,
	}
	for input, want := range cases {
		var out bytes.Buffer
		p := New(strings.NewReader(input), &out)

		got, err := p.Confirm("API exists. Overwrite?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
		assert.Equal(t, "API exists. Overwrite? [y/N]: ", out.String())
	}
}

func TestScriptedSkipsEmptyAnswersForAsk(t *testing.T) {
	s := &Scripted{Answers: []string{"", "value", "y"}}

	answer, err := s.Ask("Full name")
	require.NoError(t, err)
	assert.Equal(t, "value", answer)

	ok, err := s.Confirm("Overwrite?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Full name", "Overwrite?"}, s.Asked)

	_, err = s.Confirm("again?")
	assert.True(t, errors.Is(err, ErrNoInput))
}

func TestAlways(t *testing.T) {
	ok, err := Always(true).Confirm("Delete?")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Always(true).Ask("Full name")
	assert.True(t, errors.Is(err, ErrNoInput))
}

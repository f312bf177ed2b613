package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-shredder/internal/testutil"
)

const testPrompt = "Do you want to fill this file with zeros? (y/n): "

func newTestAdapter(input string) (*Adapter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewAdapter(strings.NewReader(input), &out, testutil.Logger()), &out
}

func TestConfirm_ValidAnswers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase yes", "y\n", true},
		{"uppercase yes", "Y\n", true},
		{"lowercase no", "n\n", false},
		{"uppercase no", "N\n", false},
		{"surrounding whitespace", "  y \n", true},
		{"windows line ending", "n\r\n", false},
		{"no trailing newline", "Y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, out := newTestAdapter(tt.input)

			answer, err := adapter.Confirm(context.Background(), testPrompt)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
			assert.Equal(t, testPrompt, out.String())
		})
	}
}

func TestConfirm_InvalidInputIsRejectedAndReprompted(t *testing.T) {
	adapter, out := newTestAdapter("x\ny\n")

	answer, err := adapter.Confirm(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.True(t, answer)
	assert.Equal(t, testPrompt+InvalidChoiceMessage+"\n"+testPrompt, out.String())
}

func TestConfirm_EmptyInputIsNotADefault(t *testing.T) {
	adapter, out := newTestAdapter("\n\nn\n")

	answer, err := adapter.Confirm(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.False(t, answer)
	assert.Equal(t, 2, strings.Count(out.String(), InvalidChoiceMessage))
	assert.Equal(t, 3, strings.Count(out.String(), testPrompt))
}

func TestConfirm_WordsAreRejected(t *testing.T) {
	adapter, out := newTestAdapter("yes\nno\nN\n")

	answer, err := adapter.Confirm(context.Background(), testPrompt)

	require.NoError(t, err)
	assert.False(t, answer)
	assert.Equal(t, 2, strings.Count(out.String(), InvalidChoiceMessage))
}

func TestConfirm_EndOfInput(t *testing.T) {
	t.Run("no input at all", func(t *testing.T) {
		adapter, _ := newTestAdapter("")

		answer, err := adapter.Confirm(context.Background(), testPrompt)

		require.Error(t, err)
		assert.True(t, errors.Is(err, io.EOF))
		assert.False(t, answer)
	})

	t.Run("invalid final line", func(t *testing.T) {
		adapter, out := newTestAdapter("maybe")

		answer, err := adapter.Confirm(context.Background(), testPrompt)

		require.Error(t, err)
		assert.True(t, errors.Is(err, io.EOF))
		assert.False(t, answer)
		assert.Contains(t, out.String(), InvalidChoiceMessage)
	})
}

func TestConfirm_SharedReaderAcrossPrompts(t *testing.T) {
	adapter, _ := newTestAdapter("y\nn\n")
	ctx := context.Background()

	first, err := adapter.Confirm(ctx, testPrompt)
	require.NoError(t, err)
	second, err := adapter.Confirm(ctx, testPrompt)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestWaitForEnter(t *testing.T) {
	t.Run("consumes one line", func(t *testing.T) {
		adapter, out := newTestAdapter("\ny\n")
		ctx := context.Background()

		require.NoError(t, adapter.WaitForEnter(ctx))
		assert.Equal(t, ExitPrompt, out.String())

		answer, err := adapter.Confirm(ctx, testPrompt)
		require.NoError(t, err)
		assert.True(t, answer)
	})

	t.Run("end of input", func(t *testing.T) {
		adapter, _ := newTestAdapter("")
		require.NoError(t, adapter.WaitForEnter(context.Background()))
	})

	t.Run("cancelled context", func(t *testing.T) {
		adapter, out := newTestAdapter("\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.WaitForEnter(ctx)
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out.String())
	})
}

func TestIsInteractive_NonTerminal(t *testing.T) {
	adapter, _ := newTestAdapter("")
	assert.False(t, adapter.IsInteractive())
}

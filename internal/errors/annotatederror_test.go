package errors_test

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := errors.New("lab closed", slog.String("room", "Staircase"))
	require.Equal(t, "lab closed", err.Error())

	// Wrapping keeps sentinels detectable.
	sentinel := errors.NewSentinel("out of donuts")
	require.NotErrorIs(t, err, errors.NewSentinel("out of donuts"))
	wrapped := errors.Wrap(sentinel, "submit dna", slog.Int("donuts", 1))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "submit dna: out of donuts", wrapped.Error())

	var annotated errors.AnnotatedError
	require.True(t, errors.As(wrapped, &annotated))
	group := annotated.LogValue().Group()
	require.Contains(t, group, slog.Int("donuts", 1))

	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.GreaterOrEqual(t, sourceIdx, 0)
	require.Contains(t, group[sourceIdx].Value.String(), "annotatederror_test.go")
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, errors.Wrap(nil, "nothing happened"))
}

func TestSlogError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantKey string
		kind    slog.Kind
	}{
		{
			name:    "plain error",
			err:     errors.NewSentinel("plain"),
			wantKey: "error",
			kind:    slog.KindString,
		},
		{
			name:    "annotated error",
			err:     errors.Wrap(errors.New("inner", slog.String("weapon", "Rope")), "outer"),
			wantKey: "error",
			kind:    slog.KindGroup,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := errors.SlogError(tt.err)
			require.Equal(t, tt.wantKey, attr.Key)
			require.Equal(t, tt.kind, attr.Value.Resolve().Kind())
		})
	}
}

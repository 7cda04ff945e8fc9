package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/smartcontractkit/weierstrass/internal/curves"
	"github.com/smartcontractkit/weierstrass/internal/logger"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, curve *curves.NamedCurve, args ...string) (string, error) {
	log, err := logger.NewLogger(io.Discard, "debug")
	require.NoError(t, err)

	var out bytes.Buffer
	err = run(curve, args, &out, log)
	return strings.TrimSpace(out.String()), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"generator"}, "Point (5, 1)"},
		{[]string{"verify", "5", "1"}, "true"},
		{[]string{"verify", "5", "2"}, "false"},
		{[]string{"verify", "inf"}, "false"},
		{[]string{"add", "5", "1", "5", "1"}, "Point (6, 3)"},
		{[]string{"add", "5", "1", "5", "16"}, "Point Infinity"},
		{[]string{"add", "inf", "5", "1"}, "Point (5, 1)"},
		{[]string{"add", "0x5", "0x1", "inf"}, "Point (5, 1)"},
		{[]string{"double", "5", "1"}, "Point (6, 3)"},
		{[]string{"negate", "5", "1"}, "Point (5, 16)"},
		{[]string{"mul", "18"}, "Point (5, 16)"},
		{[]string{"mul", "19"}, "Point Infinity"},
		{[]string{"mul", "-1", "5", "1"}, "Point (5, 16)"},
		{[]string{"mul", "0", "inf"}, "Point Infinity"},
		{[]string{"order", "5", "1"}, "19"},
		{[]string{"order", "inf"}, "1"},
		{[]string{"order", "5", "1", "19"}, "19"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runCommand(t, curves.Toy17, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestRunSecp256k1(t *testing.T) {
	out, err := runCommand(t, curves.Secp256k1, "mul", "2")
	require.NoError(t, err)
	require.Equal(t,
		"Point (89565891926547004231252920425935692360644145829622209833684329913297188986597, "+
			"12158399299693830322967808612713398636155367887041628176798871954788371653930)",
		out,
	)
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"frobnicate"},
		{"generator", "5"},
		{"verify", "5"},
		{"verify", "5", "1", "2"},
		{"add", "5", "1"},
		{"mul"},
		{"mul", "two"},
		{"order", "5", "1", "many"},
		{"order", "5", "1", "2", "3"},
		{"double", "x", "1"},
	} {
		_, err := runCommand(t, curves.Toy17, args...)
		require.True(t, errors.Is(err, errUsage), "args: %v, err: %v", args, err)
	}
}

func TestRunArithmeticErrors(t *testing.T) {
	_, err := runCommand(t, curves.Toy17, "order", "5", "1", "18")
	require.Error(t, err)
	require.False(t, errors.Is(err, errUsage))
}

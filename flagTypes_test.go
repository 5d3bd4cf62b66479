package tsp_test

import (
	"flag"
	"testing"

	"git.solver4all.com/azaryc2s/tsp"
	"github.com/stretchr/testify/require"
)

func TestArrayStringFlags_Repeatable(t *testing.T) {
	var w tsp.ArrayStringFlags
	fs := flag.NewFlagSet("generator", flag.ContinueOnError)
	fs.Var(&w, "w", "")
	require.NoError(t, fs.Parse([]string{"-w", tsp.EUC2D, "-w", tsp.CEIL2D}))
	require.Equal(t, tsp.ArrayStringFlags{"EUC_2D", "CEIL_2D"}, w)
	require.Equal(t, "[EUC_2D CEIL_2D]", w.String())
}

func TestArrayIntFlags_Repeatable(t *testing.T) {
	var n tsp.ArrayIntFlags
	fs := flag.NewFlagSet("generator", flag.ContinueOnError)
	fs.Var(&n, "n", "")
	require.NoError(t, fs.Parse([]string{"-n", "10", "-n", "25"}))
	require.Equal(t, tsp.ArrayIntFlags{10, 25}, n)

	require.Error(t, n.Set("ten"))
}

package relation_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysched/relation"
)

func TestReadCSV_UpperTriangle(t *testing.T) {
	const in = "Ann,Bob,Cid\n" +
		"0,5,0\n" +
		"99,0,7\n" + // 99 sits below the diagonal and is ignored
		"0,0,0\n"

	m, names, err := relation.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"Ann", "Bob", "Cid"}, names)
	require.Equal(t, relation.Matrix{
		{0, 5, 0},
		{5, 0, 7},
		{0, 7, 0},
	}, m)
	require.NoError(t, relation.Validate(m))
}

func TestReadCSV_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", relation.ErrEmpty},
		{"ragged", "a,b\n0,1,2\n", relation.ErrRaggedRow},
		{"too many rows", "a,b\n0,1\n1,0\n0,0\n", relation.ErrRaggedRow},
		{"not a number", "a,b\n0,x\n", relation.ErrBadWeight},
		{"negative", "a,b\n0,-4\n", relation.ErrNegativeWeight},
		{"empty name", "a,\n0,1\n", relation.ErrEmptyName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := relation.ReadCSV(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	names := []string{"Alice", "Belle", "Claire", "Daisy", "Emily", "Felix", "Grace", "Holly"}
	require.NoError(t, relation.WriteCSV(&buf, sample(), names))

	m, got, err := relation.ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, names, got)
	require.Equal(t, sample(), m)
}

func TestWriteCSV_DefaultHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, relation.WriteCSV(&buf, relation.Matrix{{0, 3}, {3, 0}}, nil))
	require.Equal(t, "0,1\n0,3\n3,0\n", buf.String())
}

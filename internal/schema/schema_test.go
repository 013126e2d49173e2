package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClassifiesColumns(t *testing.T) {
	row := []string{"@header", "@sample", "key", "lovel", "__notes", ""}
	s, err := Parse(row)
	require.NoError(t, err)

	require.Equal(t, 0, s.HeaderColumn)
	require.Equal(t, 1, s.SampleColumn)

	require.Equal(t, KindHeader, s.Columns[0].Kind)
	require.Equal(t, KindSample, s.Columns[1].Kind)
	require.Equal(t, KindOpcode, s.Columns[2].Kind)
	require.Equal(t, "key", s.Columns[2].Name)
	require.Equal(t, KindOpcode, s.Columns[3].Kind)
	require.Equal(t, "lovel", s.Columns[3].Name)
	require.Equal(t, KindHidden, s.Columns[4].Kind)
	require.Equal(t, KindHidden, s.Columns[5].Kind)
}

func TestParseBareSampleDefaultsAliasToSample(t *testing.T) {
	row := []string{"@header", "@sample", "key"}
	s, err := Parse(row)
	require.NoError(t, err)
	require.Equal(t, "sample", s.Columns[1].Name)
}

func TestParseSampleAlias(t *testing.T) {
	row := []string{"@header", "@sample(path)", "key"}
	s, err := Parse(row)
	require.NoError(t, err)
	require.Equal(t, 1, s.SampleColumn)
	require.Equal(t, "path", s.Columns[1].Name)
}

func TestParseRawColumn(t *testing.T) {
	row := []string{"@header", "@raw", "key"}
	s, err := Parse(row)
	require.NoError(t, err)
	require.Equal(t, KindRaw, s.Columns[1].Kind)
}

func TestParseNoSampleColumnIsFine(t *testing.T) {
	row := []string{"@header", "key", "lovel", "hivel"}
	s, err := Parse(row)
	require.NoError(t, err)
	require.Equal(t, -1, s.SampleColumn)
}

func TestParseRejectsMissingHeaderColumn(t *testing.T) {
	row := []string{"key", "lovel", "hivel"}
	_, err := Parse(row)
	require.Error(t, err)
}

func TestParseRejectsDuplicateHeaderColumn(t *testing.T) {
	row := []string{"@header", "@header"}
	_, err := Parse(row)
	require.Error(t, err)
}

func TestParseRejectsDuplicateSampleColumn(t *testing.T) {
	row := []string{"@header", "@sample", "@sample(alias)"}
	_, err := Parse(row)
	require.Error(t, err)
}

func TestParseRejectsUnterminatedSampleAlias(t *testing.T) {
	row := []string{"@header", "@sample(oops"}
	_, err := Parse(row)
	require.Error(t, err)
}

func TestParseRejectsDuplicateOpcodeName(t *testing.T) {
	row := []string{"@header", "key", "key"}
	_, err := Parse(row)
	require.Error(t, err)
}

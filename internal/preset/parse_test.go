package preset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	text := "Eagles, Mike, John\n\nHawks\tSarah\tJane\nOwls|Ann|Bea|extra\n"

	drafts, err := ParseBatch(text)
	require.NoError(t, err)
	assert.Equal(t, []Draft{
		{Name: "Eagles", Player1: "Mike", Player2: "John"},
		{Name: "Hawks", Player1: "Sarah", Player2: "Jane"},
		{Name: "Owls", Player1: "Ann", Player2: "Bea"},
	}, drafts)
}

func TestParseBatch_ShortLineAbortsBatch(t *testing.T) {
	drafts, err := ParseBatch("Eagles, Mike, John\nHawks, Sarah\nOwls, Ann, Bea")

	assert.Nil(t, drafts)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 2, fe.Line)
	assert.Equal(t, "Hawks, Sarah", fe.Text)
	assert.Contains(t, err.Error(), "Team, Player 1, Player 2")
}

func TestParseBatch_KeepsEmptyFields(t *testing.T) {
	drafts, err := ParseBatch("Eagles,,John")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "", drafts[0].Player1)
}

func TestParseBatch_CRLFAndBlank(t *testing.T) {
	drafts, err := ParseBatch("Eagles, Mike, John\r\n   \r\n")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "John", drafts[0].Player2)

	drafts, err = ParseBatch("")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestParseBatch_NormalizesNFC(t *testing.T) {
	// Name written with a combining acute accent (e + U+0301).
	drafts, err := ParseBatch("Jose\u0301s, Jose\u0301, Ana")
	require.NoError(t, err)
	assert.Equal(t, "Jos\u00e9s", drafts[0].Name)
	assert.Equal(t, "Jos\u00e9", drafts[0].Player1)
}

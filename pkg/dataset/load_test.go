package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/needledrop/needledrop/pkg/tabular"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAwards(t *testing.T) {
	path := writeCSV(t, "awards.csv",
		"year,category,artist,work,won\n"+
			"2020,Record Of The Year,Billie Eilish,Everything I Wanted,true\n"+
			"2020,Song Of The Year,Billie Eilish,Everything I Wanted,false\n")

	awards, err := LoadAwards(path)
	require.NoError(t, err)
	require.Len(t, awards, 2)

	assert.Equal(t, AwardRecord{
		Year:     2020,
		Category: "Record Of The Year",
		Artist:   "Billie Eilish",
		Work:     "Everything I Wanted",
		Won:      true,
	}, awards[0])
	assert.False(t, awards[1].Won)
}

func TestLoadAwards_MissingColumn(t *testing.T) {
	path := writeCSV(t, "awards.csv", "year,category,artist,work\n2020,Record Of The Year,Billie Eilish,x\n")

	_, err := LoadAwards(path)
	require.Error(t, err)

	var schemaErr *tabular.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "won", schemaErr.Column)
}

func TestLoadAwards_NotFound(t *testing.T) {
	_, err := LoadAwards(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadStreaming_ThousandsSeparators(t *testing.T) {
	path := writeCSV(t, "streams.csv",
		"artist,track,streams,year\n"+
			"Adele,Hello,lots,2015\n")

	_, err := LoadStreaming(path)
	assert.Error(t, err)

	path = writeCSV(t, "streams2.csv",
		"artist,track,streams,year\n"+
			"Adele,Hello,\"2,635,641,022\",2015\n")

	streams, err := LoadStreaming(path)
	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, int64(2635641022), streams[0].Streams)
}

func TestLoadLifetimeAwards_InvariantViolation(t *testing.T) {
	path := writeCSV(t, "lifetime.csv",
		"artist,first_win_year,last_win_year,total_wins\n"+
			"Stevie Wonder,2009,1974,25\n")

	_, err := LoadLifetimeAwards(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last win year")
}

func TestLoadProducerCredits(t *testing.T) {
	path := writeCSV(t, "producers.csv",
		"producer,artist,track,year\n"+
			"Finneas,Billie Eilish,Bad Guy,2019\n"+
			"Dan Nigro,Olivia Rodrigo,Drivers License,2021\n")

	credits, err := LoadProducerCredits(path)
	require.NoError(t, err)
	require.Len(t, credits, 2)
	assert.Equal(t, "Finneas", credits[0].Producer)
	assert.Equal(t, 2021, credits[1].Year)
}

package tract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "food_access.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFoodAccess(t *testing.T) {
	path := writeCSV(t, `CensusTract,State,County,Urban,Rural,POP2010,lapophalf,lapop10,lalowihalf,lalowi10
53033000100,WA,King,1,0,6600,1800,0,500,0
53047970200,WA,Okanogan,0,1,1300,,650,,400
`)

	rows, duplicates, err := ReadFoodAccess(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, duplicates)
	require.Len(t, rows, 2)

	urban := rows["53033000100"]
	require.NotNil(t, urban.Population)
	assert.Equal(t, 6600.0, *urban.Population)
	assert.True(t, urban.Urban)
	assert.False(t, urban.Rural)
	require.NotNil(t, urban.LAPopHalf)
	assert.Equal(t, 1800.0, *urban.LAPopHalf)

	rural := rows["53047970200"]
	assert.False(t, rural.Urban)
	assert.True(t, rural.Rural)
	// Empty cells decode to nil, not zero
	assert.Nil(t, rural.LAPopHalf)
	assert.Nil(t, rural.LALowIHalf)
	require.NotNil(t, rural.LAPop10)
	assert.Equal(t, 650.0, *rural.LAPop10)
}

func TestReadFoodAccess_EmptyPopulation(t *testing.T) {
	path := writeCSV(t, `CensusTract,Urban,Rural,POP2010,lapophalf,lapop10,lalowihalf,lalowi10
53033000100,1,0,,600,0,0,0
`)

	rows, _, err := ReadFoodAccess(context.Background(), path)
	require.NoError(t, err)

	row := rows["53033000100"]
	assert.Nil(t, row.Population)
	require.NotNil(t, row.LAPopHalf)
	assert.Equal(t, 600.0, *row.LAPopHalf)
}

func TestReadFoodAccess_DuplicateKeysLastWins(t *testing.T) {
	path := writeCSV(t, `CensusTract,Urban,Rural,POP2010,lapophalf,lapop10,lalowihalf,lalowi10
53033000100,1,0,1000,100,0,0,0
53033000100,1,0,2000,200,0,0,0
`)

	rows, duplicates, err := ReadFoodAccess(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, duplicates)
	require.Len(t, rows, 1)
	assert.Equal(t, 2000.0, *rows["53033000100"].Population)
}

func TestReadFoodAccess_MissingColumn(t *testing.T) {
	path := writeCSV(t, `CensusTract,Urban,Rural,POP2010
53033000100,1,0,1000
`)

	_, _, err := ReadFoodAccess(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lapophalf")
}

func TestReadFoodAccess_MissingFile(t *testing.T) {
	_, _, err := ReadFoodAccess(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadFoodAccess_ContextCancelled(t *testing.T) {
	path := writeCSV(t, `CensusTract,Urban,Rural,POP2010,lapophalf,lapop10,lalowihalf,lalowi10
53033000100,1,0,1000,100,0,0,0
`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ReadFoodAccess(ctx, path)
	assert.Error(t, err)
}

func TestReadFoodAccess_BlankKeySkipped(t *testing.T) {
	path := writeCSV(t, `CensusTract,Urban,Rural,POP2010,lapophalf,lapop10,lalowihalf,lalowi10
,1,0,1000,100,0,0,0
53033000100,1,0,1000,100,0,0,0
`)

	rows, _, err := ReadFoodAccess(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

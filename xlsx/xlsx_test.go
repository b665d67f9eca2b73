package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academica/curricula/core/curriculum"
)

func TestWriteRead(t *testing.T) {
	tab := curriculum.Template()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tab))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, tab.Columns, got.Columns)
	require.Len(t, got.Records, len(tab.Records))
	for i, record := range tab.Records {
		assert.Equal(t, record, got.Records[i], "record %d", i)
	}

	// the template must decode cleanly
	courses, _, err := curriculum.Decode(got)
	require.NoError(t, err)
	assert.NotEmpty(t, courses)
}

func TestWriteTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))
	assert.NotZero(t, buf.Len())
}

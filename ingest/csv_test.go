package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestReadCSV(t *testing.T) {
	in := "a,b,c\n1,2,3\n4,,6\n\n"
	rows, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0]["a"])
	assert.Equal(t, "", rows[1]["b"])
	assert.Equal(t, "6", rows[1]["c"])
}

func TestReadCSVMalformed(t *testing.T) {
	in := "a,b\n\"unterminated,2\n"
	_, err := ReadCSV(strings.NewReader(in))
	assert.Error(t, err)
}

func TestReadBlastCSVSkipsPreamble(t *testing.T) {
	var meta strings.Builder
	for i := 0; i < 8; i++ {
		meta.WriteString("メタデータ行,情報\n")
	}
	meta.WriteString("日付,スイングスピード (mph)\n")
	meta.WriteString("\"11月 11, 2025 2:30:00 午後\",68.4\n")

	// Encode as Shift_JIS the way the vendor app writes it.
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
	_, err := w.Write([]byte(meta.String()))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rows, err := ReadBlastCSV(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "68.4", rows[0]["スイングスピード (mph)"])
}

func TestBlastHeaderLine(t *testing.T) {
	assert.True(t, blastHeaderLine("日付,バットスピード (mph),パワー (kW)"))
	assert.True(t, blastHeaderLine("Date,Bat Speed (mph),Power (kW)"))
	assert.False(t, blastHeaderLine("export generated 2025-11-11"))
}

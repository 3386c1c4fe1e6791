package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	uploadID string
	fileName string
	n        int
}

func (f fakeRow) Upload() (string, string) { return f.uploadID, f.fileName }

func TestWorkingSetAppendAndSnapshot(t *testing.T) {
	ws := NewWorkingSet[fakeRow]()
	ws.Append([]fakeRow{{uploadID: "a", n: 1}, {uploadID: "a", n: 2}}, FileHistoryEntry{ID: "a", RowCount: 2})
	ws.Append([]fakeRow{{uploadID: "b", n: 3}}, FileHistoryEntry{ID: "b", RowCount: 1})

	assert.Equal(t, 3, ws.Len())
	require.Len(t, ws.History(), 2)

	// snapshot is a copy, mutating it leaves the set intact
	snap := ws.Snapshot()
	snap[0].n = 99
	assert.Equal(t, 1, ws.Snapshot()[0].n)
}

func TestWorkingSetRemoveUpload(t *testing.T) {
	ws := NewWorkingSet[fakeRow]()
	ws.Append([]fakeRow{{uploadID: "a"}, {uploadID: "a"}}, FileHistoryEntry{ID: "a"})
	ws.Append([]fakeRow{{uploadID: "b"}}, FileHistoryEntry{ID: "b"})

	ws.RemoveUpload("a")
	assert.Equal(t, 1, ws.Len())
	require.Len(t, ws.History(), 1)
	assert.Equal(t, "b", ws.History()[0].ID)

	id, _ := ws.Snapshot()[0].Upload()
	assert.Equal(t, "b", id)
}

func TestWorkingSetRemoveLegacy(t *testing.T) {
	ws := NewWorkingSet[fakeRow]()
	ws.ReplaceAll(
		[]fakeRow{{uploadID: ""}, {uploadID: "a"}},
		[]FileHistoryEntry{{ID: LegacyUploadID}, {ID: "a"}},
	)

	ws.RemoveUpload(LegacyUploadID)
	assert.Equal(t, 1, ws.Len())
	require.Len(t, ws.History(), 1)
	assert.Equal(t, "a", ws.History()[0].ID)
}

func TestWorkingSetReplaceAll(t *testing.T) {
	ws := NewWorkingSet[fakeRow]()
	ws.Append([]fakeRow{{uploadID: "old"}}, FileHistoryEntry{ID: "old"})

	ws.ReplaceAll([]fakeRow{{uploadID: "x"}, {uploadID: "x"}}, []FileHistoryEntry{{ID: "x", RowCount: 2}})
	assert.Equal(t, 2, ws.Len())
	require.Len(t, ws.History(), 1)
	assert.Equal(t, "x", ws.History()[0].ID)
}

func TestBuildHistoryGroupsByUpload(t *testing.T) {
	rows := []fakeRow{
		{uploadID: "u1", fileName: "first.csv"},
		{uploadID: "u1", fileName: "first.csv"},
		{uploadID: "u2", fileName: "second.csv"},
		{uploadID: "u1", fileName: "first.csv"},
	}
	history := BuildHistory(rows, DatasetSavant)

	require.Len(t, history, 2)
	assert.Equal(t, "u1", history[0].ID)
	assert.Equal(t, "first.csv", history[0].FileName)
	assert.Equal(t, 3, history[0].RowCount)
	assert.Equal(t, "u2", history[1].ID)
	assert.Equal(t, 1, history[1].RowCount)
	assert.Equal(t, "database", history[0].Source)
	assert.Equal(t, DatasetSavant, history[0].Dataset)
}

func TestBuildHistoryLegacyFallback(t *testing.T) {
	rows := []fakeRow{
		{uploadID: "", fileName: ""},
		{uploadID: "", fileName: ""},
		{uploadID: "u1", fileName: "new.csv"},
	}
	history := BuildHistory(rows, DatasetBlast)

	require.Len(t, history, 2)
	assert.Equal(t, LegacyUploadID, history[0].ID)
	assert.Equal(t, "Legacy Data", history[0].FileName)
	assert.Equal(t, 2, history[0].RowCount)
}

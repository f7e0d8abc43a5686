package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahabus/rtxdecoder/rtx"
)

func Test_LocationLog_appendsACSVRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loc.csv")

	log := NewLocationLog(path)
	err := log.Append(rtx.PacketHeader{Latitude: 513456, Longitude: -21234, Altitude: 150})
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "51.345600")
	assert.Contains(t, string(contents), "-2.123400")
	assert.Contains(t, string(contents), "150")
}

func Test_Memory_recordsIndependentCopiesOfPayload(t *testing.T) {
	var m Memory
	payload := []byte{1, 2, 3}
	require.NoError(t, m.Record(rtx.PacketHeader{PayloadID: 5}, payload, true))

	payload[0] = 0xFF // mutate the caller's slice after recording
	assert.Equal(t, byte(1), m.Packets[0].Payload[0])
	assert.True(t, m.Packets[0].Valid)
}

package groundstation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahabus/rtxdecoder/rtx"
)

func Test_Classify(t *testing.T) {
	assert.Equal(t, KindSystem, Classify(rtx.PacketHeader{PayloadID: 0}))
	assert.Equal(t, KindUnknown, Classify(rtx.PacketHeader{PayloadID: 5}))
	assert.Equal(t, KindPayload, Classify(rtx.PacketHeader{PayloadID: 10}))
	assert.Equal(t, KindPayload, Classify(rtx.PacketHeader{PayloadID: 255}))
}

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "system", KindSystem.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "payload", KindPayload.String())
}

package recordfile

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/born-ml/dataloader/internal/tensor"
)

func writeCompressed(w io.Writer, payload []byte) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := zw.Write(payload); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// singleRecord builds an uncompressed one-sample stream whose first field
// has the given header and payload.
func singleRecord(dtype tensor.DataType, dims []uint32, data []byte) []byte {
	buf := []byte(MagicBytes)
	buf = binary.LittleEndian.AppendUint16(buf, Version)
	buf = binary.LittleEndian.AppendUint32(buf, 1)

	name := "bad"
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(name)))
	buf = append(buf, name...)

	buf = append(buf, byte(dtype), byte(len(dims)))
	for _, d := range dims {
		buf = binary.LittleEndian.AppendUint32(buf, d)
	}
	return append(buf, data...)
}

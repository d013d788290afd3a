package recordfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/born-ml/dataloader/internal/dataloader"
	"github.com/born-ml/dataloader/internal/tensor"
)

// MagicBytes identifies a record file.
const MagicBytes = "BDLR"

// Version is the current format version.
const Version uint16 = 1

const maxRank = 8

// maxTensorBytes caps a single decoded tensor so that a corrupt header
// cannot request an arbitrary allocation.
const maxTensorBytes = 1 << 30

// ErrBadMagic is returned when the stream is not a record file.
var ErrBadMagic = errors.New("recordfile: bad magic bytes")

// Write encodes samples into w.
func Write(w io.Writer, samples []dataloader.Sample) error {
	if uint64(len(samples)) > math.MaxUint32 {
		return fmt.Errorf("too many samples: %d", len(samples))
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	bw := bufio.NewWriter(zw)

	if err := writeHeader(bw, len(samples)); err != nil {
		zw.Close()
		return err
	}
	for i, s := range samples {
		if err := writeSample(bw, s); err != nil {
			zw.Close()
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		zw.Close()
		return fmt.Errorf("failed to flush: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zstd stream: %w", err)
	}
	return nil
}

func writeHeader(w io.Writer, count int) error {
	if _, err := io.WriteString(w, MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, Version); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	//nolint:gosec // G115: count checked against MaxUint32 by caller
	if err := binary.Write(w, binary.LittleEndian, uint32(count)); err != nil {
		return fmt.Errorf("failed to write count: %w", err)
	}
	return nil
}

func writeSample(w io.Writer, s dataloader.Sample) error {
	if len(s.Name) > math.MaxUint16 {
		return fmt.Errorf("name too long: %d bytes", len(s.Name))
	}
	//nolint:gosec // G115: length checked above
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s.Name))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s.Name); err != nil {
		return err
	}

	for k, field := range s.Fields {
		if field == nil {
			return fmt.Errorf("field %d is nil", k)
		}
		if err := writeTensor(w, field); err != nil {
			return fmt.Errorf("field %d: %w", k, err)
		}
	}
	return nil
}

func writeTensor(w io.Writer, t *tensor.RawTensor) error {
	shape := t.Shape()
	if len(shape) > maxRank {
		return fmt.Errorf("rank %d exceeds %d", len(shape), maxRank)
	}
	if t.ByteSize() > maxTensorBytes {
		return fmt.Errorf("tensor of %d bytes exceeds %d", t.ByteSize(), maxTensorBytes)
	}

	head := make([]byte, 0, 2+4*len(shape))
	head = append(head, byte(t.DType()), byte(len(shape)))
	for _, dim := range shape {
		//nolint:gosec // G115: dimensions are positive and bounded by memory
		head = binary.LittleEndian.AppendUint32(head, uint32(dim))
	}
	if _, err := w.Write(head); err != nil {
		return err
	}
	_, err := w.Write(t.Data())
	return err
}

// Read decodes every sample from r.
func Read(r io.Reader) ([]dataloader.Sample, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()
	br := bufio.NewReader(zr)

	count, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	samples := make([]dataloader.Sample, 0, min(count, 1<<16))
	for i := 0; i < count; i++ {
		s, err := readSample(br)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func readHeader(r io.Reader) (int, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return 0, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return 0, ErrBadMagic
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return 0, fmt.Errorf("failed to read version: %w", err)
	}
	if version != Version {
		return 0, fmt.Errorf("unsupported version %d (want %d)", version, Version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return 0, fmt.Errorf("failed to read count: %w", err)
	}
	return int(count), nil
}

func readSample(r io.Reader) (dataloader.Sample, error) {
	var s dataloader.Sample

	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return s, fmt.Errorf("failed to read name length: %w", err)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return s, fmt.Errorf("failed to read name: %w", err)
	}
	s.Name = string(name)

	for k := range s.Fields {
		t, err := readTensor(r)
		if err != nil {
			return s, fmt.Errorf("field %d: %w", k, err)
		}
		s.Fields[k] = t
	}
	return s, nil
}

func readTensor(r io.Reader) (*tensor.RawTensor, error) {
	var head [2]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("failed to read tensor header: %w", err)
	}
	dtype, rank := tensor.DataType(head[0]), int(head[1])
	if !dtype.Valid() {
		return nil, fmt.Errorf("invalid dtype %d", head[0])
	}
	if rank > maxRank {
		return nil, fmt.Errorf("rank %d exceeds %d", rank, maxRank)
	}

	dims := make([]byte, 4*rank)
	if _, err := io.ReadFull(r, dims); err != nil {
		return nil, fmt.Errorf("failed to read dims: %w", err)
	}
	shape := make(tensor.Shape, rank)
	for i := range shape {
		shape[i] = int(binary.LittleEndian.Uint32(dims[i*4:]))
	}
	size, err := shape.ByteSize(dtype)
	if err != nil {
		return nil, err
	}
	if size > maxTensorBytes {
		return nil, fmt.Errorf("tensor %v of %s needs %d bytes, limit is %d", shape, dtype, size, maxTensorBytes)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	return tensor.FromBytes(shape, dtype, data)
}

// Save writes samples to path.
func Save(path string, samples []dataloader.Sample) error {
	//nolint:gosec // G304: path is supplied by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(f, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads every sample from path.
func Load(path string) (dataloader.SliceDataset[dataloader.Sample], error) {
	//nolint:gosec // G304: path is supplied by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	samples, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

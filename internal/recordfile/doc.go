// Package recordfile stores Samples in a compact zstd-compressed binary file.
//
// File layout (all integers little endian, inside one zstd frame stream):
//
//	magic   [4]byte "BDLR"
//	version uint16
//	count   uint32
//	count x record:
//	    nameLen uint16, name [nameLen]byte
//	    4 x field:
//	        dtype uint8, rank uint8, dims [rank]uint32, data [prod(dims)*size]byte
//
// The loader core never touches files; recordfile is how the CLI and the
// examples materialize a Dataset.
package recordfile

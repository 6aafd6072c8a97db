package interfaces

type DecompressorInterface interface {
	Decompress(val []byte) ([]byte, error)
	Close()
}

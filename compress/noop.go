package compress

// RawCodec implements format.Raw: the payload bytes are the raw content,
// unmodified.
type RawCodec struct{}

var _ Codec = RawCodec{}

// Compress returns raw unchanged.
func (c RawCodec) Compress(raw []byte) ([]byte, error) {
	return raw, nil
}

// Decompress returns payload unchanged.
func (c RawCodec) Decompress(payload []byte) ([]byte, error) {
	return payload, nil
}

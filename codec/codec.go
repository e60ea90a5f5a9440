package codec

// Codec is the universal interface for all image codecs
type Codec interface {
	// Encode encodes a sequence of raw frames into a single byte stream
	Encode(params EncodeParams) ([]byte, error)

	// Decode decodes compressed data back into raw frames
	Decode(data []byte) (*DecodeResult, error)

	// UID returns the unique identifier (typically the IANA media type)
	UID() string

	// Name returns a human-readable name
	Name() string
}

// EncodeParams contains parameters for encoding
type EncodeParams struct {
	Frames   [][]byte // Raw RGBA8 pixel data, one buffer per frame, row-major
	Width    int      // Frame width in pixels
	Height   int      // Frame height in pixels
	DelaysMS []int    // Per-frame display delay in milliseconds; nil applies DefaultDelayMS to every frame
	Options  Options  // Codec-specific options
}

// DefaultDelayMS is the per-frame delay applied when EncodeParams.DelaysMS is nil.
const DefaultDelayMS = 100

// Options is an interface for codec-specific encoding options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	Frames    [][]byte // Decoded RGBA8 pixel data, one buffer per frame
	Width     int      // Frame width in pixels
	Height    int      // Frame height in pixels
	DelaysMS  []int    // Per-frame display delay in milliseconds
	LoopCount int      // Animation loop count; 0 means loop forever
}

package domain

// ImageAsset is a self-contained encoded image, suitable both for serving to
// a client and for decoding back into a drawing surface.
type ImageAsset struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// SourceImage is the photograph uploaded by the user, used as conditioning
// input for every era restyle.
type SourceImage struct {
	Data     []byte
	MIME     string
	Filename string
}

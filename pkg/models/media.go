package models

// MediaType classifies a media attachment.
type MediaType int

const (
	MediaTypeAudio MediaType = iota
	MediaTypeVideo
	MediaTypeImage
)

// MediaSource is where media content comes from: a local path, a URL, or an
// inline base64 payload. Exactly one variant is set.
type MediaSource struct {
	path string
	url  string
	data string
}

// MediaFromPath returns a source reading from a local file path.
func MediaFromPath(path string) MediaSource {
	return MediaSource{path: path}
}

// MediaFromURL returns a source downloading from a URL.
func MediaFromURL(url string) MediaSource {
	return MediaSource{url: url}
}

// MediaFromData returns a source carrying a base64-encoded payload.
func MediaFromData(data string) MediaSource {
	return MediaSource{data: data}
}

// Path returns the local path variant, if set.
func (s MediaSource) Path() (string, bool) {
	return s.path, s.path != ""
}

// URL returns the URL variant, if set.
func (s MediaSource) URL() (string, bool) {
	return s.url, s.url != ""
}

// Data returns the base64 payload variant, if set.
func (s MediaSource) Data() (string, bool) {
	return s.data, s.data != ""
}

// Media is a single attachment: its source, the filename it will be stored
// under in the media folder, and its type.
type Media struct {
	source   MediaSource
	filename string
	typ      MediaType
}

// NewMedia returns a media attachment of the given type.
func NewMedia(source MediaSource, filename string, typ MediaType) Media {
	return Media{source: source, filename: filename, typ: typ}
}

// Audio returns an audio attachment.
func Audio(source MediaSource, filename string) Media {
	return NewMedia(source, filename, MediaTypeAudio)
}

// Image returns an image attachment.
func Image(source MediaSource, filename string) Media {
	return NewMedia(source, filename, MediaTypeImage)
}

// Video returns a video attachment.
func Video(source MediaSource, filename string) Media {
	return NewMedia(source, filename, MediaTypeVideo)
}

func (m Media) Source() MediaSource {
	return m.source
}

func (m Media) Filename() string {
	return m.filename
}

func (m Media) Type() MediaType {
	return m.typ
}

// FieldMedia is a media attachment bound to a specific field of a note.
type FieldMedia struct {
	media Media
	field string
}

func (fm FieldMedia) Media() Media {
	return fm.media
}

// FieldName is the field the attachment renders into.
func (fm FieldMedia) FieldName() string {
	return fm.field
}

package model

type FileObject interface {
	GetFilename() string
	GetParent() string
	GetContent() []byte
	GetContentType() string
}

type ImageKind string

const (
	ImageProfile         ImageKind = "profiles"
	ImageUserBackground  ImageKind = "backgrounds"
	ImageMatchBackground ImageKind = "matches"
)

// Image is an uploaded picture. Owner is the id of the user or match it
// belongs to and becomes part of the storage key.
type Image struct {
	Kind        ImageKind
	Owner       string
	Filename    string
	ContentType string
	Content     []byte
}

func (i Image) GetFilename() string {
	return i.Filename
}

func (i Image) GetParent() string {
	return string(i.Kind) + "/" + i.Owner
}

func (i Image) GetContent() []byte {
	return i.Content
}

func (i Image) GetContentType() string {
	return i.ContentType
}

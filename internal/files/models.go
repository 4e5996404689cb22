package files

// MaxFileSize caps the decoded payload of an uploaded attachment.
const MaxFileSize = 2 * 1024 * 1024

// File is a client attachment. Payloads are held base64-encoded in the
// store; Data is omitted from listings.
type File struct {
	ID         int64  `json:"id"`
	ClientID   int64  `json:"client_id"`
	Filename   string `json:"filename"`
	Filetype   string `json:"filetype,omitempty"`
	Data       string `json:"data,omitempty"`
	UploadDate string `json:"upload_date"`
	Size       int    `json:"size,omitempty"`
}

type UploadRequest struct {
	Filename string `json:"filename"`
	Filetype string `json:"filetype"`
	Data     string `json:"data"`
}

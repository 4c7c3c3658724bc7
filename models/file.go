package models

import "time"

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypePDF   FileType = "pdf"
	FileTypeCSV   FileType = "csv"
)

// mimeToFileType is the closed mapping from upload MIME types to stored
// file types. Anything outside this table is rejected at create time.
var mimeToFileType = map[string]FileType{
	"image/png":       FileTypeImage,
	"image/jpg":       FileTypeImage,
	"image/jpeg":      FileTypeImage,
	"image/gif":       FileTypeImage,
	"image/svg+xml":   FileTypeImage,
	"application/pdf": FileTypePDF,
	"text/csv":        FileTypeCSV,
}

// FileTypeFromMIME maps a MIME type to a FileType, reporting whether the
// MIME type is supported.
func FileTypeFromMIME(mime string) (FileType, bool) {
	t, ok := mimeToFileType[mime]
	return t, ok
}

func ParseFileType(s string) (FileType, bool) {
	switch FileType(s) {
	case FileTypeImage, FileTypePDF, FileTypeCSV:
		return FileType(s), true
	}
	return "", false
}

type File struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	OrgID        string     `gorm:"type:varchar(255);not null;index" json:"org_id"`
	Type         FileType   `gorm:"type:varchar(10);not null" json:"type"`
	BlobID       string     `gorm:"type:varchar(500);not null" json:"blob_id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	ShouldDelete bool       `gorm:"default:false;index" json:"should_delete"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

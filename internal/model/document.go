package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentCategory string

const (
	DocumentConsent DocumentCategory = "consent"
	DocumentMedical DocumentCategory = "medical"
	DocumentAdmin   DocumentCategory = "admin"
	DocumentOther   DocumentCategory = "other"
)

// Document is an admin-managed file. UploaderID is nulled when the
// uploading user is deleted; the document itself stays.
type Document struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Title       string           `db:"title" json:"title"`
	Description string           `db:"description" json:"description"`
	Category    DocumentCategory `db:"category" json:"category"`
	FileKey     string           `db:"file_key" json:"file_key"`
	FileSize    int64            `db:"file_size" json:"file_size"`
	Icon        string           `db:"icon" json:"icon"`
	UploaderID  *uuid.UUID       `db:"uploader_id" json:"uploader_id,omitempty"`
	IsActive    bool             `db:"is_active" json:"is_active"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

type CreateDocumentRequest struct {
	Title       string           `form:"title" binding:"required,max=200"`
	Description string           `form:"description"`
	Category    DocumentCategory `form:"category" binding:"required,oneof=consent medical admin other"`
	Icon        string           `form:"icon" binding:"max=50"`
}

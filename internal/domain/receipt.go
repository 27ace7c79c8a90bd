package domain

import (
	"fmt"
	"path"
	"strings"
)

// Namespaces the pipeline relocates files into.
const (
	NamespaceProcessed = "processed"
	NamespaceFailed    = "failed"
)

// FileRef points at an uploaded object.
type FileRef struct {
	Bucket string
	Key    string
}

func (f FileRef) String() string {
	return "s3://" + f.Bucket + "/" + f.Key
}

// InQuarantineOrDone reports whether the key already lives under the
// processed or failed namespace.
func (f FileRef) InQuarantineOrDone() bool {
	for _, seg := range strings.Split(path.Dir(f.Key), "/") {
		if seg == NamespaceProcessed || seg == NamespaceFailed {
			return true
		}
	}
	return false
}

// RelocatedKey is the key the file takes once moved into namespace.
func (f FileRef) RelocatedKey(namespace string) string {
	return namespace + "/" + path.Base(f.Key)
}

// ReceiptKey is the key of the receipt written into namespace.
func (f FileRef) ReceiptKey(namespace string) string {
	return namespace + "/" + strings.TrimSuffix(path.Base(f.Key), ".csv") + ".receipt.json"
}

// ReceiptRow records one dispatched row.
type ReceiptRow struct {
	Row           int    `json:"row"`
	TransactionID string `json:"tx"`
}

// SuccessReceipt is written when every row of a file was dispatched.
type SuccessReceipt struct {
	File string       `json:"file"`
	Rows []ReceiptRow `json:"rows"`
}

// FailureReceipt is written when a file is quarantined.
type FailureReceipt struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// FileStatus is the outcome class of processing one file.
type FileStatus string

const (
	FileProcessed FileStatus = "processed"
	FileFailed    FileStatus = "failed"
	FileSkipped   FileStatus = "skipped"
)

// FileOutcome is the result of processing one file notification.
type FileOutcome struct {
	File       FileRef
	Status     FileStatus
	ReceiptKey string
	Rows       []ReceiptRow
	// Err is the reason a file failed. It is nil for processed and skipped files.
	Err error
	// RelocationErr is set when writing the receipt or moving the file failed.
	RelocationErr error
}

// RowError reports a bad field in an ingested row.
type RowError struct {
	Row    int
	Field  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s '%s' at row %d", e.Reason, e.Field, e.Row)
}

func (e *RowError) Unwrap() error {
	return ErrValidation
}

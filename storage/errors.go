package storage

// UploadError means the remote call failed or the remote reported a failure.
// Reason carries the remote's own error text when there is one.
type UploadError struct {
	Reason string
	Err    error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return "upload failed: " + e.Err.Error()
	}
	return "upload failed: " + e.Reason
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ResolutionError means the upload itself succeeded but the follow-up call
// resolving the file id into a fetchable URL did not. The remote object may
// be orphaned; no photo must be recorded for it.
type ResolutionError struct {
	FileID string
	Err    error
}

func (e *ResolutionError) Error() string {
	msg := "failed to resolve file URL for " + e.FileID
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

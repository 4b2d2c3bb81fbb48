package content

import (
	"errors"
	"fmt"
)

var (
	ErrFetchFailed  = errors.New("content: collection fetch failed")
	ErrSaveFailed   = errors.New("content: collection save failed")
	ErrUploadFailed = errors.New("content: media upload failed")
	ErrNotFound     = errors.New("content: record not found")
)

// FetchError reports a single collection that failed to load. Readers degrade
// to the previous (or empty) value; the error is logged, never fatal.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	if e == nil {
		return ErrFetchFailed.Error()
	}
	return fmt.Sprintf("%s: collection=%s: %v", ErrFetchFailed.Error(), e.Collection, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e == nil || e.Err == nil {
		return []error{ErrFetchFailed}
	}
	return []error{ErrFetchFailed, e.Err}
}

// SaveError reports the outcome of a two-phase collection save. The create
// and update steps fail independently; either field may be nil. Draft state
// is never reverted, so the user can correct and retry.
type SaveError struct {
	Collection string
	Create     error
	Update     error
}

func (e *SaveError) Error() string {
	if e == nil {
		return ErrSaveFailed.Error()
	}
	switch {
	case e.Create != nil && e.Update != nil:
		return fmt.Sprintf("%s: collection=%s: create: %v; update: %v", ErrSaveFailed.Error(), e.Collection, e.Create, e.Update)
	case e.Create != nil:
		return fmt.Sprintf("%s: collection=%s: create: %v", ErrSaveFailed.Error(), e.Collection, e.Create)
	case e.Update != nil:
		return fmt.Sprintf("%s: collection=%s: update: %v", ErrSaveFailed.Error(), e.Collection, e.Update)
	default:
		return fmt.Sprintf("%s: collection=%s", ErrSaveFailed.Error(), e.Collection)
	}
}

func (e *SaveError) Unwrap() []error {
	out := []error{ErrSaveFailed}
	if e == nil {
		return out
	}
	if e.Create != nil {
		out = append(out, e.Create)
	}
	if e.Update != nil {
		out = append(out, e.Update)
	}
	return out
}

// UploadError reports a failed media upload. The field that triggered the
// upload keeps its prior value.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	if e == nil {
		return ErrUploadFailed.Error()
	}
	return fmt.Sprintf("%s: key=%s: %v", ErrUploadFailed.Error(), e.Key, e.Err)
}

func (e *UploadError) Unwrap() []error {
	if e == nil || e.Err == nil {
		return []error{ErrUploadFailed}
	}
	return []error{ErrUploadFailed, e.Err}
}

// NotFoundError reports a missing record lookup.
type NotFoundError struct {
	Collection string
	Key        string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s: collection=%s key=%s", ErrNotFound.Error(), e.Collection, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

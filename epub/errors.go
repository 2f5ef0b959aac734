package epub

import "errors"

// Sentinel errors returned by the epub package.
var (
	// ErrDRMProtected indicates the file is encrypted (Adobe ADEPT, Apple
	// FairPlay, Readium LCP or an unknown scheme) and its navigation
	// documents cannot be read.
	ErrDRMProtected = errors.New("epub: file is DRM protected")

	// ErrInvalidEPub indicates the archive has no usable package document
	// (no container.xml rootfile and no .opf entry).
	ErrInvalidEPub = errors.New("epub: invalid ePub file")

	// ErrFileNotFound indicates the requested entry does not exist in the
	// archive.
	ErrFileNotFound = errors.New("epub: file not found in archive")
)

// SPDX-License-Identifier: MIT

package mmapstore

import "errors"

var (
	// ErrBadHeader indicates a missing or malformed file header.
	ErrBadHeader = errors.New("mmapstore: bad header")

	// ErrBadSize indicates the file length does not match its header.
	ErrBadSize = errors.New("mmapstore: file size does not match header")

	// ErrClosed is returned by any call on a closed store.
	ErrClosed = errors.New("mmapstore: store is closed")
)

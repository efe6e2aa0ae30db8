// SPDX-License-Identifier: MIT

// Package mmapstore keeps a single float64 matrix in a memory-mapped file and
// hands it out as a non-owning matrix.Dense view.
//
// File layout (all integers little-endian):
//
//	offset  size  field
//	0       4     magic "LVMX"
//	4       2     rows (uint16)
//	6       2     cols (uint16)
//	8       8     reserved, zero
//	16      8·n   n = rows·cols float64 values, row-major
//
// The float section is read in place, so the file is only portable between
// little-endian hosts.
//
// Writes through the view land in the mapping; Flush syncs them to disk.
// After Close every view obtained from the store is invalid and must not be
// used again.
package mmapstore

// SPDX-License-Identifier: EPL-2.0

// Package segment extracts arbitrary time windows from block-compressed WAV
// containers without decoding the whole file, and probes duration from
// header metadata alone.
package segment

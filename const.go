// SPDX-License-Identifier: Apache-2.0

package amf3

// Wire type markers.
const (
	markerUndefined   byte = 0x00
	markerNull        byte = 0x01
	markerFalse       byte = 0x02
	markerTrue        byte = 0x03
	markerInteger     byte = 0x04
	markerDouble      byte = 0x05
	markerString      byte = 0x06
	markerXMLDoc      byte = 0x07
	markerDate        byte = 0x08
	markerArray       byte = 0x09
	markerObject      byte = 0x0a
	markerXML         byte = 0x0b
	markerByteArray   byte = 0x0c
	markerVectorInt   byte = 0x0d
	markerVectorUint  byte = 0x0e
	markerVectorFloat byte = 0x0f
	markerVectorObj   byte = 0x10
	markerDictionary  byte = 0x11
)

// Signed INTEGER range: U29's 29 bits, sign-extended at bit 28.
const (
	minEncodableInt = -(1 << 28)
	maxEncodableInt = 1<<28 - 1
)

// defaultMaxDepth bounds the recursive encode/decode walk: a flat
// frame-count cap on nested compounds, guarding against runaway
// recursion from deeply nested or maliciously crafted input.
const defaultMaxDepth = 1000

// defaultTransformEventName is the attribute name the encoder looks up on
// a value to find its per-type transform callable.
const defaultTransformEventName = "__toAMF3"

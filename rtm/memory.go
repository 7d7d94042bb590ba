// Copyright 2026 go-rtm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rtm

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Memory operations between vectors and slices. Slice forms are the
// unaligned loads and stores; Go slices carry their own bounds, so a short
// slice panics instead of reading past the end. Byte forms use
// little-endian IEEE-754 encoding.

// LaneSize returns the size in bytes of one lane of type T.
func LaneSize[T Float]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// VectorLoad reads four lanes from src.
func VectorLoad[T Float](src []T) Vector4[T] {
	return Vector4[T]{src[0], src[1], src[2], src[3]}
}

// VectorLoad3 reads three lanes from src, with W = 0.
func VectorLoad3[T Float](src []T) Vector4[T] {
	return Vector4[T]{X: src[0], Y: src[1], Z: src[2]}
}

// VectorStore writes four lanes to dst.
func VectorStore[T Float](input Vector4[T], dst []T) {
	_ = dst[3]
	dst[0] = input.X
	dst[1] = input.Y
	dst[2] = input.Z
	dst[3] = input.W
}

// VectorStore3 writes the first three lanes to dst.
func VectorStore3[T Float](input Vector4[T], dst []T) {
	_ = dst[2]
	dst[0] = input.X
	dst[1] = input.Y
	dst[2] = input.Z
}

// VectorLoadBytes reads four little-endian lanes from src.
func VectorLoadBytes[T Float](src []byte) Vector4[T] {
	n := LaneSize[T]()
	return Vector4[T]{
		loadLane[T](src[0*n:]),
		loadLane[T](src[1*n:]),
		loadLane[T](src[2*n:]),
		loadLane[T](src[3*n:]),
	}
}

// VectorLoadBytes3 reads three little-endian lanes from src, with W = 0.
func VectorLoadBytes3[T Float](src []byte) Vector4[T] {
	n := LaneSize[T]()
	return Vector4[T]{
		X: loadLane[T](src[0*n:]),
		Y: loadLane[T](src[1*n:]),
		Z: loadLane[T](src[2*n:]),
	}
}

// VectorStoreBytes writes four little-endian lanes to dst.
func VectorStoreBytes[T Float](input Vector4[T], dst []byte) {
	n := LaneSize[T]()
	storeLane(input.X, dst[0*n:])
	storeLane(input.Y, dst[1*n:])
	storeLane(input.Z, dst[2*n:])
	storeLane(input.W, dst[3*n:])
}

// VectorStoreBytes3 writes the first three lanes to dst, little-endian.
func VectorStoreBytes3[T Float](input Vector4[T], dst []byte) {
	n := LaneSize[T]()
	storeLane(input.X, dst[0*n:])
	storeLane(input.Y, dst[1*n:])
	storeLane(input.Z, dst[2*n:])
}

func loadLane[T Float](src []byte) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(binary.LittleEndian.Uint32(src))).(T)
	default:
		return any(math.Float64frombits(binary.LittleEndian.Uint64(src))).(T)
	}
}

func storeLane[T Float](v T, dst []byte) {
	switch f := any(v).(type) {
	case float32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(f))
	default:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(any(v).(float64)))
	}
}

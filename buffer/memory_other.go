// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux

package buffer

// heap stands in for shared memory on platforms without memfd.
type heap struct {
	data []byte
}

func newMemory(size int) (memory, error) {
	return &heap{data: make([]byte, size)}, nil
}

func (m *heap) bytes() []byte { return m.data }

func (m *heap) resize(size int) error {
	grown := make([]byte, size)
	copy(grown, m.data)
	m.data = grown
	return nil
}

func (m *heap) fileDescriptor() int { return -1 }

func (m *heap) close() error {
	m.data = nil
	return nil
}

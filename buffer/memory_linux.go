// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package buffer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// memfd is a shared mapping backed by an anonymous memory file.
type memfd struct {
	fd   int
	data []byte
}

func newMemory(size int) (memory, error) {
	fd, err := unix.MemfdCreate("ggui-shm", unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("buffer: memfd_create: %w", err)
	}
	m := &memfd{fd: fd}
	if err := m.resize(size); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	return m, nil
}

func (m *memfd) bytes() []byte { return m.data }

func (m *memfd) resize(size int) error {
	if err := unix.Ftruncate(m.fd, int64(size)); err != nil {
		return fmt.Errorf("buffer: ftruncate: %w", err)
	}
	data, err := unix.Mmap(m.fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("buffer: mmap: %w", err)
	}
	if m.data != nil {
		_ = unix.Munmap(m.data)
	}
	m.data = data
	return nil
}

func (m *memfd) fileDescriptor() int { return m.fd }

func (m *memfd) close() error {
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	if cerr := unix.Close(m.fd); err == nil {
		err = cerr
	}
	return err
}

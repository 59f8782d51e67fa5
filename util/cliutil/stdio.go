package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// StdioPath selects stdin or stdout instead of a file.
const StdioPath = "-"

type FileOrStdin struct {
	path string
	r    io.Reader
	file *os.File
}

func OpenInput(path string) (*FileOrStdin, error) {
	if path == StdioPath {
		return &FileOrStdin{path: path, r: os.Stdin}, nil
	}
	fi, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileOrStdin{path: path, r: fi, file: fi}, nil
}

func (in *FileOrStdin) IsStdio() bool { return in.file == nil }

// ReadLines reads the remaining input line by line, without line terminators.
func (in *FileOrStdin) ReadLines() ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in.r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", in.path, err)
	}
	return lines, nil
}

// Close closes the underlying file; stdin is left open.
func (in *FileOrStdin) Close() error {
	if in.file == nil {
		return nil
	}
	return in.file.Close()
}

type FileOrStdout struct {
	path string
	w    *bufio.Writer
	file *os.File
}

func CreateOutput(path string) (*FileOrStdout, error) {
	if path == StdioPath {
		return &FileOrStdout{path: path, w: bufio.NewWriter(os.Stdout)}, nil
	}
	fi, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileOrStdout{path: path, w: bufio.NewWriter(fi), file: fi}, nil
}

func (out *FileOrStdout) IsStdio() bool { return out.file == nil }

func (out *FileOrStdout) WriteAll(b []byte) error {
	if _, err := out.w.Write(b); err != nil {
		return fmt.Errorf("writing %s: %w", out.path, err)
	}
	return nil
}

// Close flushes buffered output and closes the underlying file; stdout is
// flushed but left open.
func (out *FileOrStdout) Close() error {
	if err := out.w.Flush(); err != nil {
		if out.file != nil {
			_ = out.file.Close()
		}
		return fmt.Errorf("writing %s: %w", out.path, err)
	}
	if out.file == nil {
		return nil
	}
	return out.file.Close()
}

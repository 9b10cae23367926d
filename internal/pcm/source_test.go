// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type fakeReader struct {
	format *goaudio.Format
	data   []int
	fail   error
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.fail != nil {
		return 0, f.fail
	}
	n := copy(buf.Data, f.data)
	f.data = f.data[n:]
	return n, nil
}

func mono(data ...int) *fakeReader {
	return &fakeReader{
		format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		data:   data,
	}
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits    int
		want    float32
		wantErr bool
	}{
		{bits: 8, want: 128},
		{bits: 16, want: 32768},
		{bits: 24, want: 8388608},
		{bits: 32, want: 2147483648},
		{bits: 12, wantErr: true},
		{bits: 0, wantErr: true},
	}

	for _, tt := range tests {
		got, err := FullScale(tt.bits)
		if tt.wantErr {
			if !errors.Is(err, ErrBitDepth) {
				t.Errorf("FullScale(%d) error = %v, want ErrBitDepth", tt.bits, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FullScale(%d) = %v, %v, want %v", tt.bits, got, err, tt.want)
		}
	}
}

func TestSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits int
		opts []Option
		in   []int
		want []float32
	}{
		{name: "signed 16", bits: 16, in: []int{0, 16384, -32768}, want: []float32{0, 0.5, -1}},
		{name: "signed 8", bits: 8, in: []int{0, 64, -128}, want: []float32{0, 0.5, -1}},
		{name: "unsigned 8", bits: 8, opts: []Option{Unsigned()}, in: []int{128, 192, 0}, want: []float32{0, 0.5, -1}},
		{name: "signed 32", bits: 32, in: []int{1 << 30}, want: []float32{0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := NewSource(mono(tt.in...), tt.bits, tt.opts...)
			if err != nil {
				t.Fatalf("NewSource() error = %v", err)
			}

			buf := make([]float32, 8)
			n, err := src.ReadSamples(buf)
			if !errors.Is(err, io.EOF) {
				t.Errorf("short read error = %v, want io.EOF", err)
			}
			if n != len(tt.want) {
				t.Fatalf("ReadSamples() = %d, want %d", n, len(tt.want))
			}
			for i, w := range tt.want {
				if buf[i] != w {
					t.Errorf("sample %d = %v, want %v", i, buf[i], w)
				}
			}
		})
	}
}

func TestSource_FullReadThenEOF(t *testing.T) {
	t.Parallel()

	src, err := NewSource(mono(1, 2, 3, 4), 16)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float32, 4)
	if n, err := src.ReadSamples(buf); n != 4 || err != nil {
		t.Errorf("first read = %d, %v, want 4, nil", n, err)
	}
	if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second read = %d, %v, want 0, EOF", n, err)
	}
	if src.BufSize() != 4 {
		t.Errorf("BufSize() = %d, want 4", src.BufSize())
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewSource(&fakeReader{}, 16); err == nil {
		t.Error("NewSource() with nil format succeeded")
	}
	if _, err := NewSource(mono(), 20); !errors.Is(err, ErrBitDepth) {
		t.Errorf("NewSource(20 bits) error = %v, want ErrBitDepth", err)
	}

	r := mono(1)
	r.fail = io.ErrUnexpectedEOF
	src, err := NewSource(r, 16)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.ReadSamples(make([]float32, 2)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	direct := bytes.NewReader([]byte("abc"))
	rs, err := Seekable(direct)
	if err != nil || rs != direct {
		t.Errorf("Seekable(bytes.Reader) = %v, %v, want the same reader", rs, err)
	}

	rs, err = Seekable(io.MultiReader(bytes.NewReader([]byte("abcdef"))))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rs.Seek(3, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "def" {
		t.Errorf("after seek read %q, want %q", rest, "def")
	}
}

// writer.go - streaming RIFF/WAVE PCM writer with header rewrite on Close

package wave

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Writer streams PCM frames to a WAVE file, rewriting both headers with
// their final sizes when Close is called.
type Writer struct {
	f             *os.File
	channels      int
	bitsPerSample int
	frameRate     int
	frames        int64
}

// NewWriter creates path and reserves placeholder RIFF/WAVE headers.
// Defaults to 16-bit PCM at the given channel count and frame rate;
// override with Set8BitsPerSample before writing any samples.
func NewWriter(path string, channels, frameRate int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wave: create %s: %w", path, err)
	}
	w := &Writer{f: f, channels: channels, bitsPerSample: 16, frameRate: frameRate}
	if err := w.writeHeaders(0); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Set8BitsPerSample switches the writer to 8-bit PCM. Must be called
// before any frames are written.
func (w *Writer) Set8BitsPerSample() { w.bitsPerSample = 8 }

// Set16BitsPerSample switches the writer to 16-bit PCM (the default).
func (w *Writer) Set16BitsPerSample() { w.bitsPerSample = 16 }

// SetFrameRate changes the frame rate. Must be called before any frames
// are written.
func (w *Writer) SetFrameRate(rate int) { w.frameRate = rate }

func (w *Writer) writeHeaders(dataSize uint32) error {
	bpf := bytesPerFrame(w.channels, w.bitsPerSample)
	if _, err := w.f.Seek(0, 0); err != nil {
		return fmt.Errorf("wave: seek: %w", err)
	}
	riffSize := uint32(riffHeaderBytes-8) + dataSize
	if err := binary.Write(w.f, binary.LittleEndian, []byte("RIFF")); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, riffSize); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, []byte("WAVE")); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, []byte("fmt ")); err != nil {
		return err
	}
	fh := FMTHeader{
		ChunkSize:     16,
		FormatType:    formatPCM,
		Channels:      uint16(w.channels),
		FrameRate:     uint32(w.frameRate),
		ByteRate:      uint32(w.frameRate * bpf),
		BytesPerFrame: uint16(bpf),
		BitsPerSample: uint16(w.bitsPerSample),
	}
	if err := binary.Write(w.f, binary.LittleEndian, fh.ChunkSize); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, fh.FormatType); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, fh.Channels); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, fh.FrameRate); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, fh.ByteRate); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, fh.BytesPerFrame); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, fh.BitsPerSample); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, []byte("data")); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, dataSize); err != nil {
		return err
	}
	return nil
}

// WriteFrame writes one frame (one sample per channel). samples must have
// length equal to the writer's channel count.
func (w *Writer) WriteFrame(samples []int16) error {
	if len(samples) != w.channels {
		return fmt.Errorf("wave: expected %d channels, got %d", w.channels, len(samples))
	}
	for _, s := range samples {
		switch w.bitsPerSample {
		case 16:
			if err := binary.Write(w.f, binary.LittleEndian, s); err != nil {
				return err
			}
		case 8:
			if err := binary.Write(w.f, binary.LittleEndian, uint8(s)); err != nil {
				return err
			}
		default:
			return ErrUnsupportedFormat
		}
	}
	w.frames++
	return nil
}

// Close rewrites both headers with their final sizes and closes the file.
func (w *Writer) Close() error {
	pos, err := w.f.Seek(0, 1)
	if err != nil {
		return fmt.Errorf("wave: tell: %w", err)
	}
	dataSize := uint32(pos) - riffHeaderBytes
	if err := w.writeHeaders(dataSize); err != nil {
		w.f.Close()
		return err
	}
	if _, err := w.f.Seek(0, 2); err != nil {
		w.f.Close()
		return fmt.Errorf("wave: seek end: %w", err)
	}
	return w.f.Close()
}

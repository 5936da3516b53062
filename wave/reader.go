// reader.go - RIFF/WAVE PCM reader with RIFX-gated endianness swap

package wave

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Reader streams frames out of a PCM WAVE file.
type Reader struct {
	f             *os.File
	channels      int
	bitsPerSample int
	frameRate     int
	frameCount    int64
	index         int64
	dataStart     int64
	order         binary.ByteOrder
}

// Open reads and validates both headers, positioning the reader at the
// first frame.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wave: open %s: %w", path, err)
	}
	r := &Reader{f: f}
	if err := r.readHeaders(); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func (r *Reader) readHeaders() error {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r.f, magic); err != nil {
		return fmt.Errorf("wave: read magic: %w", err)
	}
	switch string(magic) {
	case "RIFF":
		r.order = binary.LittleEndian
	case "RIFX":
		r.order = binary.BigEndian
	default:
		return ErrUnsupportedFormat
	}

	var riffSize uint32
	if err := binary.Read(r.f, r.order, &riffSize); err != nil {
		return err
	}
	wave := make([]byte, 4)
	if _, err := io.ReadFull(r.f, wave); err != nil || string(wave) != "WAVE" {
		return ErrUnsupportedFormat
	}
	fmtTag := make([]byte, 4)
	if _, err := io.ReadFull(r.f, fmtTag); err != nil || string(fmtTag) != "fmt " {
		return ErrUnsupportedFormat
	}
	var chunkSize uint32
	if err := binary.Read(r.f, r.order, &chunkSize); err != nil {
		return err
	}
	var formatType, channels, bytesPerFrame, bitsPerSample uint16
	var frameRate, byteRate uint32
	if err := binary.Read(r.f, r.order, &formatType); err != nil {
		return err
	}
	if err := binary.Read(r.f, r.order, &channels); err != nil {
		return err
	}
	if err := binary.Read(r.f, r.order, &frameRate); err != nil {
		return err
	}
	if err := binary.Read(r.f, r.order, &byteRate); err != nil {
		return err
	}
	if err := binary.Read(r.f, r.order, &bytesPerFrame); err != nil {
		return err
	}
	if err := binary.Read(r.f, r.order, &bitsPerSample); err != nil {
		return err
	}
	if formatType != formatPCM {
		return ErrUnsupportedFormat
	}
	if bitsPerSample != 8 && bitsPerSample != 16 {
		return ErrUnsupportedFormat
	}
	if chunkSize > fmtChunkContentSize {
		if _, err := r.f.Seek(int64(chunkSize-fmtChunkContentSize), 1); err != nil {
			return err
		}
	}

	dataTag := make([]byte, 4)
	if _, err := io.ReadFull(r.f, dataTag); err != nil || string(dataTag) != "data" {
		return ErrUnsupportedFormat
	}
	var dataSize uint32
	if err := binary.Read(r.f, r.order, &dataSize); err != nil {
		return err
	}

	r.channels = int(channels)
	r.bitsPerSample = int(bitsPerSample)
	r.frameRate = int(frameRate)
	bpf := bytesPerFrame
	if bpf == 0 {
		bpf = uint16(int(channels) * int(bitsPerSample) / 8)
	}
	r.frameCount = int64(dataSize) / int64(bpf)
	pos, err := r.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	r.dataStart = pos
	return nil
}

// Channels returns the channel count.
func (r *Reader) Channels() int { return r.channels }

// BitsPerSample returns the sample bit depth, 8 or 16.
func (r *Reader) BitsPerSample() int { return r.bitsPerSample }

// FrameRate returns the frame rate in Hz.
func (r *Reader) FrameRate() int { return r.frameRate }

// EOF reports whether every frame has been consumed.
func (r *Reader) EOF() bool { return r.index >= r.frameCount }

// ReadFrame returns one signed-16-bit sample per channel, sign-extending
// 8-bit samples. 16-bit samples are read little-endian; the RIFX byte swap
// applies to the header fields only.
func (r *Reader) ReadFrame() ([]int16, error) {
	if r.EOF() {
		return nil, io.EOF
	}
	out := make([]int16, r.channels)
	for c := 0; c < r.channels; c++ {
		switch r.bitsPerSample {
		case 16:
			var v int16
			if err := binary.Read(r.f, binary.LittleEndian, &v); err != nil {
				return nil, err
			}
			out[c] = v
		case 8:
			var v uint8
			if err := binary.Read(r.f, r.order, &v); err != nil {
				return nil, err
			}
			out[c] = SignExtend8(v)
		default:
			return nil, ErrUnsupportedFormat
		}
	}
	r.index++
	return out, nil
}

// SignExtend8 widens an 8-bit PCM sample byte to signed 16-bit.
func SignExtend8(v uint8) int16 {
	if v < 0x80 {
		return int16(v)
	}
	return int16(v) - 0x100
}

// BufferAll reads every remaining frame into memory and rewinds the
// reader to the start of the data.
func (r *Reader) BufferAll() ([][]int16, error) {
	frames := make([][]int16, 0, r.frameCount-r.index)
	for !r.EOF() {
		f, err := r.ReadFrame()
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	if _, err := r.f.Seek(r.dataStart, io.SeekStart); err != nil {
		return nil, err
	}
	r.index = 0
	return frames, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error { return r.f.Close() }

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/soundskim/sound"
	"github.com/ik5/soundskim/utils"
)

// WAV has no container frames, so the scan slices the PCM stream into
// 20ms virtual frames.
const framesPerSecond = 50

// progressEvery is the progress/cancellation checkpoint cadence in
// frames.
const progressEvery = 200

// Factory registers the WAV backend.
type Factory struct{}

func (Factory) Extensions() []string      { return []string{"wav"} }
func (Factory) NewScanner() sound.Scanner { return Scanner{} }

// Scanner builds a frame index for PCM WAV files: fixed 20ms frames,
// arithmetic offsets from the data chunk start, per-frame gain from
// the frame's peak amplitude.
type Scanner struct{}

func (Scanner) Scan(r io.ReadSeeker, size int64, progress sound.ProgressFunc) (*sound.Index, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWav
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("fmt chunk: %v: %w", err, sound.ErrMalformed)
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrNotPCM
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	sampleRate := int(dec.SampleRate)
	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, fmt.Errorf("channel count %d: %w", channels, sound.ErrMalformed)
	}

	spf := sampleRate / framesPerSecond
	if spf < 1 {
		return nil, fmt.Errorf("sample rate %d: %w", sampleRate, sound.ErrMalformed)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("pcm chunk: %v: %w", err, sound.ErrMalformed)
	}

	dataStart, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dataBytes := int64(dec.PCMSize)
	if dataBytes < 0 || dataStart+dataBytes > size {
		return nil, fmt.Errorf("pcm data of %d bytes at %d passes end of file: %w",
			dataBytes, dataStart, sound.ErrMalformed)
	}

	bytesPerSample := bitDepth / 8
	frameBytes := spf * channels * bytesPerSample
	numFrames := int((dataBytes + int64(frameBytes) - 1) / int64(frameBytes))

	offsets := make([]int64, numFrames)
	lens := make([]int, numFrames)
	gains := make([]int, numFrames)

	buf := &goaudio.IntBuffer{
		Data:   make([]int, spf*channels),
		Format: dec.Format(),
	}

	remaining := dataBytes
	for i := 0; i < numFrames; i++ {
		if progress != nil && i%progressEvery == 0 {
			if !progress(float64(i) / float64(numFrames)) {
				return nil, fmt.Errorf("frame %d of %d: %w", i, numFrames, sound.ErrCanceled)
			}
		}

		frameLen := int64(frameBytes)
		if frameLen > remaining {
			frameLen = remaining
		}
		offsets[i] = dataStart + int64(i)*int64(frameBytes)
		lens[i] = int(frameLen)
		remaining -= frameLen

		peak, err := framePeak(dec, buf, int(frameLen)/bytesPerSample)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		gains[i] = utils.PeakGain(peak, bitDepth)
	}

	if progress != nil && !progress(1) {
		return nil, fmt.Errorf("%w", sound.ErrCanceled)
	}

	idx, err := sound.NewIndex(sound.IndexSpec{
		Filetype:        "WAV",
		SampleRate:      sampleRate,
		Channels:        channels,
		SamplesPerFrame: spf,
		FileSizeBytes:   size,
		AvgBitrateKbps:  int(dec.AvgBytesPerSec) * 8 / 1000,
		Offsets:         offsets,
		Lens:            lens,
		Gains:           gains,
		Seekable:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return idx, nil
}

// framePeak reads want interleaved samples through buf and returns the
// largest magnitude seen. Short decoder reads are retried; running out
// of PCM data before want samples means the container declared more
// data than it holds.
func framePeak(dec *wav.Decoder, buf *goaudio.IntBuffer, want int) (int, error) {
	peak := 0

	for got := 0; got < want; {
		buf.Data = buf.Data[:want-got]

		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return 0, fmt.Errorf("pcm data ends early: %w", sound.ErrMalformed)
		}

		for _, s := range buf.Data[:n] {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}

		got += n
	}

	return peak, nil
}
